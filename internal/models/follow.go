package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: FollowerID follows FolloweeID while IsFollowing is set.
// There is at most one record per ordered pair; unfollowing clears the flag.
type Follow struct {
	FollowerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolloweeID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	IsFollowing bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Follower User `gorm:"foreignKey:FollowerID"`
	Followee User `gorm:"foreignKey:FolloweeID"`
}
