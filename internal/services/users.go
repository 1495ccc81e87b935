package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
	"github.com/thereayou/socialgraph/internal/validation"
)

// Profile is a user together with the sizes of its follow lists.
type Profile struct {
	User           *models.User
	FollowerCount  int64
	FollowingCount int64
}

// profileUpdate carries the validation rules of a UserPatch. A nil field is not
// validated because it is not applied.
type profileUpdate struct {
	Name        *string    `json:"name" validate:"omitnil,notblank,max=100"`
	Surname     *string    `json:"surname" validate:"omitnil,notblank,max=100"`
	Email       *string    `json:"email" validate:"omitnil,email"`
	Dob         *time.Time `json:"dob" validate:"omitnil,past"`
	Description *string    `json:"description" validate:"omitnil,max=1000"`
}

func (s *IdentityService) GetUser(ctx context.Context, p Principal, id uuid.UUID) (*Profile, error) {
	if !s.authz.IsSelfOrAdmin(ctx, p, id) {
		return nil, errs.ErrForbidden
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.store.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	followings, err := s.store.CountFollowings(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, FollowerCount: followers, FollowingCount: followings}, nil
}

func (s *IdentityService) ListUsers(ctx context.Context, p Principal) ([]models.User, error) {
	if !s.authz.IsAdmin(p) {
		return nil, errs.ErrForbidden
	}
	return s.store.ListUsers(ctx)
}

func (s *IdentityService) ListUsersByType(ctx context.Context, p Principal, userType models.UserType) ([]models.User, error) {
	if !s.authz.IsAdmin(p) {
		return nil, errs.ErrForbidden
	}
	if !userType.Valid() {
		return nil, errs.Validation(map[string]string{"type": "User type must be one of: REGULAR, ADMIN"})
	}
	return s.store.ListUsersByType(ctx, userType)
}

// SearchUsers matches query against name or surname, ignoring case.
func (s *IdentityService) SearchUsers(ctx context.Context, p Principal, query string) ([]models.User, error) {
	if !p.Authenticated() {
		return nil, errs.ErrForbidden
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation(map[string]string{"query": "Query is required"})
	}
	return s.store.SearchUsers(ctx, query)
}

// UpdateUser applies the non-nil fields of patch. Nil means "leave as is", never
// "clear".
func (s *IdentityService) UpdateUser(ctx context.Context, p Principal, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	if !s.authz.IsSelfOrAdmin(ctx, p, id) {
		return nil, errs.ErrForbidden
	}

	err := validation.Struct(s.validate, profileUpdate{
		Name:        patch.Name,
		Surname:     patch.Surname,
		Email:       patch.Email,
		Dob:         patch.Dob,
		Description: patch.Description,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.store.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user updated", "user_id", id, "by", p.Username)
	return user, nil
}

// DeleteUser soft-deletes the user. Its credential and follow edges stay in place.
func (s *IdentityService) DeleteUser(ctx context.Context, p Principal, id uuid.UUID) error {
	if !s.authz.IsSelfOrAdmin(ctx, p, id) {
		return errs.ErrForbidden
	}
	if err := s.store.SoftDeleteUser(ctx, id); err != nil {
		return err
	}

	s.log.Info(ctx, "user deleted", "user_id", id, "by", p.Username)
	return nil
}
