package model

import "time"

type Image struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	PropertyID uint      `json:"property_id" gorm:"not null;index"`
	Path       string    `json:"path" gorm:"not null;unique"`
	Filename   string    `json:"filename" gorm:"not null"`
	Size       int64     `json:"size" gorm:"not null"`
	MimeType   string    `json:"mime_type" gorm:"not null"`
	IsPrimary  bool      `json:"is_primary" gorm:"not null;default:false;index"`
	Property   *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE;"`
}
