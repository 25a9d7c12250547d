package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthProvider string

const (
	AuthProviderLocal    AuthProvider = "local"
	AuthProviderFirebase AuthProvider = "firebase"
)

type User struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string       `gorm:"size:64;not null" json:"username"`
	Email          string       `gorm:"uniqueIndex;not null" json:"email"`
	Password       string       `gorm:"not null;default:''" json:"-"` // empty for federated accounts
	AuthProvider   AuthProvider `gorm:"size:16;not null;default:'local'" json:"auth_provider"`
	Dob            time.Time    `json:"dob"`
	Height         float64      `json:"height"` // cm
	Weight         float64      `json:"weight"` // kg
	ProfilePicture string       `json:"profile_picture"`
	ResetToken     string       `json:"-"`
	ResetTokenExp  time.Time    `json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
