package models

import (
	"strings"
	"time"
)

// Cliente da casa, sempre vinculado ao usuário dono.
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name           string     `gorm:"size:100;not null" json:"name"`
	BirthDate      time.Time  `gorm:"type:date;not null" json:"birth_date"`
	MotherName     string     `gorm:"size:100;not null" json:"mother_name"`
	InitiationDate *time.Time `gorm:"type:date" json:"initiation_date"`

	Email   string `gorm:"size:120" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`

	Rituals

	PhotoPath string `gorm:"size:255" json:"photo_path"`

	CreatedAt time.Time `json:"created_at"`
}

// Rituals agrupa a ficha ritual. Os campos são opacos para o sistema.
type Rituals struct {
	Navalha           string `gorm:"size:120" json:"navalha"`
	Babakekere        string `gorm:"size:120" json:"babakekere"`
	Iyakekere         string `gorm:"size:120" json:"iyakekere"`
	Ojubona           string `gorm:"size:120" json:"ojubona"`
	Padrinho          string `gorm:"size:120" json:"padrinho"`
	Madrinha          string `gorm:"size:120" json:"madrinha"`
	Orunko            string `gorm:"size:120" json:"orunko"`
	Orixa             string `gorm:"size:120" json:"orixa"`
	Ajunto            string `gorm:"size:120" json:"ajunto"`
	SettledDeitiesRaw string `gorm:"type:text" json:"settled_deities_raw"`
}

func (c Client) GetUserID() uint { return c.UserID }

// SettledDeities separa a lista livre de orixás assentados por vírgula.
func (r Rituals) SettledDeities() []string {
	out := []string{}
	for _, part := range strings.Split(r.SettledDeitiesRaw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
