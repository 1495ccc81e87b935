package dto

import "time"

type RegisterRequest struct {
	Name           string  `json:"name" binding:"required,notblank,max=100"`
	Surname        string  `json:"surname" binding:"required,notblank,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Dob            *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	ProfilePhotoID *int64  `json:"profile_photo_id"`
	Username       string  `json:"username" binding:"required,notblank,max=50"`
	Password       string  `json:"password" binding:"required,min=8,max=64"`
	UserType       string  `json:"user_type" binding:"required,oneof=REGULAR ADMIN"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
