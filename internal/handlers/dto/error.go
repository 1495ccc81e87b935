package dto

import (
	"time"

	"github.com/thereayou/socialgraph/internal/errs"
)

type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewErrorResponse renders err for clients. Internal causes are never exposed.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error:     errs.ErrorKind(err),
		Message:   errs.ErrorMessage(err),
		Fields:    errs.ErrorFields(err),
		Timestamp: time.Now().UTC(),
	}
}
