package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thereayou/socialgraph/internal/cache"
	"github.com/thereayou/socialgraph/internal/database"
	"github.com/thereayou/socialgraph/internal/logging"
	"github.com/thereayou/socialgraph/internal/models"
	"github.com/thereayou/socialgraph/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	svc    *IdentityService
	db     *database.Database
	tokens *auth.JWTManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := database.OpenSQLite(filepath.Join(t.TempDir(), "services_test.db"))
	require.NoError(t, err)
	db := database.NewDatabase(gdb)
	t.Cleanup(func() { _ = db.Close() })

	hasher, err := NewBcryptHasher(bcrypt.MinCost, "pepper")
	require.NoError(t, err)

	tokens := auth.NewJWTManager("test-secret", time.Hour)
	authz := NewAuthorizer(db, cache.NopCredentialCache{}, logging.Discard())

	return &fixture{
		svc:    NewIdentityService(db, hasher, tokens, authz, logging.Discard()),
		db:     db,
		tokens: tokens,
	}
}

func registerInput(username, password string, role models.UserType) RegisterInput {
	return RegisterInput{
		Name:     username,
		Surname:  "Tester",
		Username: username,
		Password: password,
		UserType: role,
	}
}

func (f *fixture) register(t *testing.T, username string, role models.UserType) *models.User {
	t.Helper()

	u, err := f.svc.Register(context.Background(), registerInput(username, username+"-password", role))
	require.NoError(t, err)
	return u
}

// principal logs username in and authenticates the issued token.
func (f *fixture) principal(t *testing.T, username string) Principal {
	t.Helper()

	ctx := context.Background()
	res, err := f.svc.Login(ctx, username, username+"-password")
	require.NoError(t, err)

	p, err := f.svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	return p
}
