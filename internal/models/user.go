package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeRegular UserType = "REGULAR"
	UserTypeAdmin   UserType = "ADMIN"
)

func (t UserType) Valid() bool {
	return t == UserTypeRegular || t == UserTypeAdmin
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	Surname        string    `gorm:"not null"`
	Email          *string
	Dob            *time.Time
	Description    *string
	ProfilePhotoID *int64
	UserType       UserType `gorm:"type:varchar(16);not null;index"`
	IsDeleted      bool     `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserPatch is a partial profile update; nil fields are left as they are.
type UserPatch struct {
	Name           *string
	Surname        *string
	Email          *string
	Dob            *time.Time
	Description    *string
	ProfilePhotoID *int64
}
