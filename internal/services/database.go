package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/models"
)

// UserDirectory reads and writes non-deleted users.
type UserDirectory interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByType(ctx context.Context, userType models.UserType) ([]models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error)
	SoftDeleteUser(ctx context.Context, id uuid.UUID) error
}

type CredentialStore interface {
	CreateCredential(ctx context.Context, cred *models.Credential) error
	CredentialExists(ctx context.Context, username string) (bool, error)
	FindCredentialByUsername(ctx context.Context, username string) (*models.Credential, error)
}

type FollowGraph interface {
	UpsertFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*models.Follow, error)
	DeactivateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]models.User, error)
	Followings(ctx context.Context, userID uuid.UUID) ([]models.User, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowings(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Transactor runs fn as one unit of work. Store calls made with the ctx handed to fn
// join it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is everything the identity service needs from persistence.
type Store interface {
	UserDirectory
	CredentialStore
	FollowGraph
	Transactor
}
