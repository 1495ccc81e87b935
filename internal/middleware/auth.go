package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/handlers/dto"
	"github.com/thereayou/socialgraph/internal/services"
	"github.com/thereayou/socialgraph/pkg/auth"
)

const PrincipalKey = "principal"

// Authenticator turns a bearer token into the calling principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (services.Principal, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the caller
// under PrincipalKey.
func AuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			abort(c, errs.ErrTokenInvalid)
			return
		}

		principal, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by AuthMiddleware, or the zero Principal.
func PrincipalFrom(c *gin.Context) services.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(services.Principal); ok {
			return p
		}
	}
	return services.Principal{}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(errs.HTTPStatus(err), dto.NewErrorResponse(err))
}
