package timezone

import (
	"time"

	// base de fusos embutida para rodar em imagens sem /usr/share/zoneinfo
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

// Clock é a fonte de "agora" injetada nos casos de uso.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// StartOfDay zera o horário mantendo o fuso de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate interpreta "AAAA-MM-DD" no fuso padrão.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location(DefaultTimezone))
}

// YearsSince conta anos completos entre from e now, respeitando o aniversário.
func YearsSince(from, now time.Time) int {
	years := now.Year() - from.Year()
	if now.Month() < from.Month() || (now.Month() == from.Month() && now.Day() < from.Day()) {
		years--
	}
	return years
}

// MonthRange devolve [primeiro dia do mês, primeiro dia do mês seguinte).
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
