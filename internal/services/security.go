package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/cache"
	"github.com/thereayou/socialgraph/internal/logging"
	"github.com/thereayou/socialgraph/internal/models"
)

// Principal is the authenticated caller as carried by its token.
type Principal struct {
	Username string
	UserID   uuid.UUID
	Role     models.UserType
}

func (p Principal) Authenticated() bool {
	return p.Username != ""
}

// Authorizer answers "is this the caller's own resource" by resolving the caller's
// username to the user owning that credential.
type Authorizer struct {
	creds CredentialStore
	cache cache.CredentialCache
	log   logging.Logger
}

func NewAuthorizer(creds CredentialStore, c cache.CredentialCache, log logging.Logger) *Authorizer {
	if c == nil {
		c = cache.NopCredentialCache{}
	}
	return &Authorizer{creds: creds, cache: c, log: log.With("component", "authorizer")}
}

func (a *Authorizer) IsAdmin(p Principal) bool {
	return p.Authenticated() && p.Role == models.UserTypeAdmin
}

// IsSelfOrAdmin never fails: a principal that cannot be resolved is simply not
// authorized.
func (a *Authorizer) IsSelfOrAdmin(ctx context.Context, p Principal, target uuid.UUID) bool {
	if a.IsAdmin(p) {
		return true
	}
	return a.IsSelf(ctx, p, target)
}

// IsSelf is IsSelfOrAdmin without the admin bypass.
func (a *Authorizer) IsSelf(ctx context.Context, p Principal, target uuid.UUID) bool {
	if !p.Authenticated() {
		return false
	}
	id, ok := a.resolve(ctx, p.Username)
	return ok && id == target
}

func (a *Authorizer) resolve(ctx context.Context, username string) (uuid.UUID, bool) {
	id, ok, err := a.cache.UserID(ctx, username)
	if err != nil {
		a.log.Warn(ctx, "credential cache read failed", "username", username, "error", err)
	}
	if ok {
		return id, true
	}

	cred, err := a.creds.FindCredentialByUsername(ctx, username)
	if err != nil {
		a.log.Error(ctx, "resolve principal", "username", username, "error", err)
		return uuid.Nil, false
	}
	if cred == nil {
		return uuid.Nil, false
	}

	a.remember(ctx, username, cred.UserID)
	return cred.UserID, true
}

// remember caches the owner of username. Failures only cost a later lookup.
func (a *Authorizer) remember(ctx context.Context, username string, id uuid.UUID) {
	if err := a.cache.SetUserID(ctx, username, id); err != nil {
		a.log.Warn(ctx, "credential cache write failed", "username", username, "error", err)
	}
}
