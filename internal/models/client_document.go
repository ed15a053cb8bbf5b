package models

import "time"

// Documento anexado ao cliente. StoredPath é relativo à raiz de uploads.
type ClientDocument struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"index;not null" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OriginalName string `gorm:"size:255;not null" json:"original_name"`
	StoredPath   string `gorm:"size:255;not null" json:"-"`
	MimeType     string `gorm:"size:120" json:"mime_type"`
	SizeBytes    *int64 `json:"size_bytes"`

	UploadedAt time.Time `gorm:"autoCreateTime;not null" json:"uploaded_at"`
}

func (d ClientDocument) GetUserID() uint { return d.UserID }
