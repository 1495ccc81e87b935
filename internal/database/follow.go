package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertFollow sets the follower -> followee edge to following, creating it on first
// use and reactivating it otherwise. The pair stays unique.
func (d *Database) UpsertFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*models.Follow, error) {
	now := time.Now()
	edge := models.Follow{
		FollowerID:  followerID,
		FolloweeID:  followeeID,
		IsFollowing: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := d.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_following", "updated_at"}),
		}).
		Create(&edge).Error
	if err != nil {
		return nil, errs.Internal(err)
	}

	return d.GetFollow(ctx, followerID, followeeID)
}

// DeactivateFollow clears the following flag of an existing edge. A missing edge
// yields errs.ErrNotFollowing; an edge that is already inactive is left as it is.
func (d *Database) DeactivateFollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	res := d.conn(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Updates(map[string]any{"is_following": false, "updated_at": time.Now()})
	if res.Error != nil {
		return errs.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFollowing
	}
	return nil
}

// GetFollow returns the edge for the ordered pair or errs.ErrNotFollowing.
func (d *Database) GetFollow(ctx context.Context, followerID, followeeID uuid.UUID) (*models.Follow, error) {
	edge := models.Follow{}
	err := d.conn(ctx).First(&edge, "follower_id = ? AND followee_id = ?", followerID, followeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFollowing
		}
		return nil, errs.Internal(err)
	}
	return &edge, nil
}

// followersOf selects active users with a live edge towards userID.
func followersOf(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ? AND follows.is_following = ?", userID, true).
		Scopes(active)
}

// followingsOf selects active users that userID follows.
func followingsOf(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&models.User{}).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ? AND follows.is_following = ?", userID, true).
		Scopes(active)
}

func (d *Database) Followers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := followersOf(d.conn(ctx), userID).Order("follows.created_at, users.id").Find(&users).Error; err != nil {
		return nil, errs.Internal(err)
	}
	return users, nil
}

func (d *Database) Followings(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := followingsOf(d.conn(ctx), userID).Order("follows.created_at, users.id").Find(&users).Error; err != nil {
		return nil, errs.Internal(err)
	}
	return users, nil
}

// CountFollowers counts exactly the users Followers would return.
func (d *Database) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := followersOf(d.conn(ctx), userID).Count(&n).Error; err != nil {
		return 0, errs.Internal(err)
	}
	return n, nil
}

func (d *Database) CountFollowings(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := followingsOf(d.conn(ctx), userID).Count(&n).Error; err != nil {
		return 0, errs.Internal(err)
	}
	return n, nil
}
