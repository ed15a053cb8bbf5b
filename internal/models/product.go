package models

import "time"

type Product struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name          string  `gorm:"size:100;not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Price         float64 `gorm:"not null;default:0" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity"`

	CreatedAt time.Time `json:"created_at"`
}

func (p Product) GetUserID() uint { return p.UserID }
