package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ProductID *uint    `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product,omitempty"`

	Date          time.Time `gorm:"index;not null" json:"date"`
	Executor      string    `gorm:"size:100;not null" json:"executor"`
	Procedures    string    `gorm:"size:200;not null" json:"procedures"`
	TotalValue    float64   `gorm:"not null;default:0" json:"total_value"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	Type          string    `gorm:"size:50;not null" json:"type"`
	Details       string    `gorm:"type:text" json:"details"`
}

func (a Appointment) GetUserID() uint { return a.UserID }
