package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/models"
)

// DateLayout is the wire format of a date of birth.
const DateLayout = "2006-01-02"

// UpdateUserRequest is a partial update: absent fields are left unchanged.
type UpdateUserRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	Surname        *string `json:"surname" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Dob            *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	ProfilePhotoID *int64  `json:"profile_photo_id"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Email          *string   `json:"email,omitempty"`
	Dob            *string   `json:"dob,omitempty"`
	Description    *string   `json:"description,omitempty"`
	ProfilePhotoID *int64    `json:"profile_photo_id,omitempty"`
	UserType       string    `json:"user_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProfileResponse struct {
	UserResponse
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Surname:        u.Surname,
		Email:          u.Email,
		Description:    u.Description,
		ProfilePhotoID: u.ProfilePhotoID,
		UserType:       string(u.UserType),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if u.Dob != nil {
		dob := u.Dob.Format(DateLayout)
		resp.Dob = &dob
	}
	return resp
}

func NewUserList(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
