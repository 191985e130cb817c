package model

import (
	"time"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"gorm.io/gorm"
)

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"unique;index;size:255;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      consts.Role    `json:"role" gorm:"type:varchar(16);not null;default:'guest'"`
	Properties []Property    `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == consts.RoleAdmin
}

func (u *User) IsAgent() bool {
	return u.Role == consts.RoleAgent
}

func (u *User) IsGuest() bool {
	return u.Role == consts.RoleGuest
}
