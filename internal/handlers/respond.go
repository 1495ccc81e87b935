package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/thereayou/socialgraph/internal/errs"
	"github.com/thereayou/socialgraph/internal/handlers/dto"
	"github.com/thereayou/socialgraph/internal/validation"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Configure(v)
	}
}

// respondError writes err as an error body with its mapped status. The error is
// attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(errs.HTTPStatus(err), dto.NewErrorResponse(err))
}

// bindJSON decodes and validates the body into req.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, validation.FromError(err))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, errs.Validation(map[string]string{name: "Invalid user id"}))
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, *s, time.UTC)
	if err != nil {
		return nil, errs.Validation(map[string]string{field: "Date of birth must be formatted as " + dto.DateLayout})
	}
	return &t, nil
}
