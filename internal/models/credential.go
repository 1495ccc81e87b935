package models

import "github.com/google/uuid"

// Credential is the login of a user. It shares the user's primary key.
type Credential struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
}

func (Credential) TableName() string { return "user_credentials" }
