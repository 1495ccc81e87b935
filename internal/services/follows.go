package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
)

// Follow makes follower follow followee. Only the follower may do this, admins
// included. Following twice is a no-op that still succeeds.
func (s *IdentityService) Follow(ctx context.Context, p Principal, followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		return false, errs.ErrSelfFollow
	}
	if !s.authz.IsSelf(ctx, p, followerID) {
		return false, errs.ErrForbidden
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.store.GetUser(ctx, followerID); err != nil {
			return err
		}
		if _, err := s.store.GetUser(ctx, followeeID); err != nil {
			return err
		}
		_, err := s.store.UpsertFollow(ctx, followerID, followeeID)
		return err
	})
	if err != nil {
		return false, err
	}

	s.log.Debug(ctx, "follow", "follower_id", followerID, "followee_id", followeeID)
	return true, nil
}

// Unfollow clears the edge. It fails with errs.ErrNotFollowing only when the pair
// never had an edge; unfollowing twice succeeds.
func (s *IdentityService) Unfollow(ctx context.Context, p Principal, followerID, followeeID uuid.UUID) (bool, error) {
	if !s.authz.IsSelf(ctx, p, followerID) {
		return false, errs.ErrForbidden
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.store.DeactivateFollow(ctx, followerID, followeeID)
	})
	if err != nil {
		return false, err
	}

	s.log.Debug(ctx, "unfollow", "follower_id", followerID, "followee_id", followeeID)
	return true, nil
}

func (s *IdentityService) Followers(ctx context.Context, p Principal, id uuid.UUID) ([]models.User, error) {
	if err := s.subject(ctx, p, id); err != nil {
		return nil, err
	}
	return s.store.Followers(ctx, id)
}

func (s *IdentityService) Followings(ctx context.Context, p Principal, id uuid.UUID) ([]models.User, error) {
	if err := s.subject(ctx, p, id); err != nil {
		return nil, err
	}
	return s.store.Followings(ctx, id)
}

func (s *IdentityService) FollowerCount(ctx context.Context, p Principal, id uuid.UUID) (int64, error) {
	if err := s.subject(ctx, p, id); err != nil {
		return 0, err
	}
	return s.store.CountFollowers(ctx, id)
}

func (s *IdentityService) FollowingCount(ctx context.Context, p Principal, id uuid.UUID) (int64, error) {
	if err := s.subject(ctx, p, id); err != nil {
		return 0, err
	}
	return s.store.CountFollowings(ctx, id)
}

// subject checks that any caller is authenticated and that the user whose lists are
// read exists.
func (s *IdentityService) subject(ctx context.Context, p Principal, id uuid.UUID) error {
	if !p.Authenticated() {
		return errs.ErrForbidden
	}
	_, err := s.store.GetUser(ctx, id)
	return err
}
