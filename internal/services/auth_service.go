package services

import (
	"context"
	"errors"
	"time"

	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
	"github.com/thereayou/socialgraph/internal/validation"
	"github.com/thereayou/socialgraph/pkg/auth"
)

type RegisterInput struct {
	Name           string          `json:"name" validate:"required,notblank,max=100"`
	Surname        string          `json:"surname" validate:"required,notblank,max=100"`
	Email          *string         `json:"email" validate:"omitempty,email"`
	Dob            *time.Time      `json:"dob" validate:"omitempty,past"`
	Description    *string         `json:"description" validate:"omitempty,max=1000"`
	ProfilePhotoID *int64          `json:"profile_photo_id"`
	Username       string          `json:"username" validate:"required,notblank,max=50"`
	Password       string          `json:"password" validate:"required,min=8,max=64"`
	UserType       models.UserType `json:"user_type" validate:"required,oneof=REGULAR ADMIN"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Register creates a user and its credential atomically and returns the profile.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	exists, err := s.store.CredentialExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateUsername
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, errs.Validation(map[string]string{"password": "Password is too long"})
		}
		return nil, errs.Internal(err)
	}

	user := &models.User{
		Name:           in.Name,
		Surname:        in.Surname,
		Email:          in.Email,
		Dob:            in.Dob,
		Description:    in.Description,
		ProfilePhotoID: in.ProfilePhotoID,
		UserType:       in.UserType,
	}

	// the unique index on username settles races the pre-check lets through
	err = s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.CreateUser(ctx, user); err != nil {
			return err
		}
		return s.store.CreateCredential(ctx, &models.Credential{
			UserID:       user.ID,
			Username:     in.Username,
			PasswordHash: hash,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "username", in.Username)
	return user, nil
}

// Login checks the credentials and issues a token bound to the user's current role.
// Every mismatch yields the same errs.ErrInvalidCredentials.
func (s *IdentityService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	cred, err := s.store.FindCredentialByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		s.hasher.Verify("", password)
		return nil, errs.ErrInvalidCredentials
	}
	if !s.hasher.Verify(cred.PasswordHash, password) || cred.User.IsDeleted {
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(cred.Username, cred.UserID, string(cred.User.UserType))
	if err != nil {
		return nil, errs.Internal(err)
	}

	s.authz.remember(ctx, cred.Username, cred.UserID)
	s.log.Info(ctx, "user logged in", "user_id", cred.UserID)

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: &cred.User}, nil
}

// Authenticate turns a bearer token into the calling Principal.
func (s *IdentityService) Authenticate(ctx context.Context, token string) (Principal, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return Principal{}, errs.ErrTokenExpired
		}
		return Principal{}, errs.ErrTokenInvalid
	}

	role := models.UserType(claims.Role)
	if !role.Valid() {
		return Principal{}, errs.ErrTokenInvalid
	}

	return Principal{Username: claims.Username, UserID: claims.UserID, Role: role}, nil
}
