package database

import (
	"context"
	"errors"

	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateCredential stores a login for an existing user. A taken username yields
// errs.ErrDuplicateUsername.
func (d *Database) CreateCredential(ctx context.Context, cred *models.Credential) error {
	if err := d.conn(ctx).Omit(clause.Associations).Create(cred).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateUsername
		}
		return errs.Internal(err)
	}
	return nil
}

func (d *Database) CredentialExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := d.conn(ctx).Model(&models.Credential{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, errs.Internal(err)
	}
	return count > 0, nil
}

// FindCredentialByUsername loads the credential together with its user, deleted or
// not. It returns (nil, nil) when the username is unknown.
func (d *Database) FindCredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	cred := models.Credential{}
	err := d.conn(ctx).Preload("User").First(&cred, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Internal(err)
	}
	return &cred, nil
}
