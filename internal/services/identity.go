package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/logging"
	"github.com/thereayou/socialgraph/internal/validation"
	"github.com/thereayou/socialgraph/pkg/auth"
)

// TokenIssuer issues and checks bearer tokens.
type TokenIssuer interface {
	Generate(username string, userID uuid.UUID, role string) (string, time.Time, error)
	Verify(token string) (*auth.Claims, error)
}

// IdentityService orchestrates registration, login, the user directory and the
// follow graph. Every operation is its own unit of work.
type IdentityService struct {
	store    Store
	hasher   PasswordHasher
	tokens   TokenIssuer
	authz    *Authorizer
	validate *validator.Validate
	log      logging.Logger
}

func NewIdentityService(store Store, hasher PasswordHasher, tokens TokenIssuer, authz *Authorizer, log logging.Logger) *IdentityService {
	return &IdentityService{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		authz:    authz,
		validate: validation.New(),
		log:      log.With("component", "identity"),
	}
}
