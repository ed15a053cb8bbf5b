package client

import (
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
)

var today = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateDates(t *testing.T) {
	initiated := date(2010, 5, 1)
	beforeBirth := date(1999, 1, 1)
	future := date(2026, 10, 19)
	sameDay := date(2026, 10, 18)

	tests := []struct {
		name       string
		birth      time.Time
		initiation *time.Time
		wantErr    bool
	}{
		{"birth only", date(2000, 1, 1), nil, false},
		{"birth today", sameDay, nil, false},
		{"birth in future", future, nil, true},
		{"valid initiation", date(2000, 1, 1), &initiated, false},
		{"initiation before birth", date(2000, 1, 1), &beforeBirth, true},
		{"initiation in future", date(2000, 1, 1), &future, true},
	}

	for _, tt := range tests {
		c := &models.Client{Name: "Ana", MotherName: "Maria", BirthDate: tt.birth, InitiationDate: tt.initiation}
		err := Validate(c, today)
		if tt.wantErr != httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("%s: err = %v", tt.name, err)
		}
	}
}

func TestValidateRequiredAndOptional(t *testing.T) {
	base := func() *models.Client {
		return &models.Client{Name: " Ana ", MotherName: "Maria", BirthDate: date(2000, 1, 1)}
	}

	c := base()
	if err := Validate(c, today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Ana" {
		t.Errorf("name not trimmed: %q", c.Name)
	}

	bad := map[string]func(*models.Client){
		"no name":       func(c *models.Client) { c.Name = "" },
		"long name":     func(c *models.Client) { c.Name = strings.Repeat("a", 101) },
		"no mother":     func(c *models.Client) { c.MotherName = " " },
		"bad email":     func(c *models.Client) { c.Email = "ana@" },
		"long phone":    func(c *models.Client) { c.Phone = strings.Repeat("9", 21) },
		"long ritual":   func(c *models.Client) { c.Navalha = strings.Repeat("x", 121) },
		"missing birth": func(c *models.Client) { c.BirthDate = time.Time{} },
	}
	for name, mutate := range bad {
		c := base()
		mutate(c)
		if err := Validate(c, today); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}

	c = base()
	c.Email = "ana@example.com"
	if err := Validate(c, today); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
}

func TestDerivedYears(t *testing.T) {
	initiated := date(2016, 10, 19)
	c := &models.Client{BirthDate: date(2000, 10, 18), InitiationDate: &initiated}

	if got := Age(c, today); got != 26 {
		t.Errorf("age = %d", got)
	}
	if got := YearsInitiated(c, today); got == nil || *got != 9 {
		t.Errorf("years initiated = %v", got)
	}
	if YearsInitiated(&models.Client{}, today) != nil {
		t.Error("expected nil without initiation")
	}
}
