package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName          string                    `json:"firstName"`
	LastName           string                    `json:"lastName"`
	Email              string                    `json:"email" gorm:"unique;not null"`
	Password           string                    `json:"-" gorm:"not null"`
	EmailToken         string                    `json:"-"`
	PasswordResetToken string                    `json:"-"`
	IsVerified         bool                      `json:"isVerified" gorm:"default:false"`
	IsAdmin            bool                      `json:"isAdmin" gorm:"default:false"`
	Courses            datatypes.JSONSlice[uint] `json:"courses"`
}
