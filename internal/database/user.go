package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
	"gorm.io/gorm"
)

// active restricts a users query to rows that are not soft-deleted. Every read of
// users goes through it.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("users.is_deleted = ?", false)
}

func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	if err := d.conn(ctx).Create(user).Error; err != nil {
		return errs.Internal(err)
	}
	return nil
}

// GetUser returns the active user with the given id or errs.ErrUserNotFound.
func (d *Database) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := models.User{}
	err := d.conn(ctx).Scopes(active).First(&user, "users.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(id)
		}
		return nil, errs.Internal(err)
	}
	return &user, nil
}

func (d *Database) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := d.conn(ctx).Scopes(active).Order("users.created_at, users.id").Find(&users).Error; err != nil {
		return nil, errs.Internal(err)
	}
	return users, nil
}

func (d *Database) ListUsersByType(ctx context.Context, userType models.UserType) ([]models.User, error) {
	users := make([]models.User, 0)
	err := d.conn(ctx).
		Scopes(active).
		Where("users.user_type = ?", userType).
		Order("users.created_at, users.id").
		Find(&users).Error
	if err != nil {
		return nil, errs.Internal(err)
	}
	return users, nil
}

// SearchUsers matches query case-insensitively as a substring of name or surname.
// Both sides are folded by the database so they always agree.
func (d *Database) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	like := "%" + escapeLike(query) + "%"

	users := make([]models.User, 0)
	err := d.conn(ctx).
		Scopes(active).
		Where(`(LOWER(users.name) LIKE LOWER(?) ESCAPE '\' OR LOWER(users.surname) LIKE LOWER(?) ESCAPE '\')`, like, like).
		Order("users.created_at, users.id").
		Find(&users).Error
	if err != nil {
		return nil, errs.Internal(err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of patch to an active user and returns the
// stored result. updated_at is bumped even for an empty patch.
func (d *Database) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Surname != nil {
		updates["surname"] = *patch.Surname
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Dob != nil {
		updates["dob"] = *patch.Dob
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ProfilePhotoID != nil {
		updates["profile_photo_id"] = *patch.ProfilePhotoID
	}

	res := d.conn(ctx).Model(&models.User{}).Scopes(active).Where("users.id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, errs.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, userNotFound(id)
	}
	return d.GetUser(ctx, id)
}

// SoftDeleteUser flags an active user as deleted. The row and its edges stay.
func (d *Database) SoftDeleteUser(ctx context.Context, id uuid.UUID) error {
	res := d.conn(ctx).
		Model(&models.User{}).
		Scopes(active).
		Where("users.id = ?", id).
		Updates(map[string]any{"is_deleted": true, "updated_at": time.Now()})
	if res.Error != nil {
		return errs.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return userNotFound(id)
	}
	return nil
}

func userNotFound(id uuid.UUID) error {
	return errs.Errorf(errs.ENOTFOUND, errs.KindUserNotFound, "User not found with id: %s", id)
}
