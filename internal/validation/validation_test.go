package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/socialgraph/internal/errs"
)

type signup struct {
	Name     string     `json:"name" validate:"required"`
	Surname  *string    `json:"surname" validate:"omitnil,notblank"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Dob      *time.Time `json:"dob" validate:"omitempty,past"`
	Password string     `json:"password" validate:"required,min=8,max=64"`
	UserType string     `json:"user_type" validate:"required,oneof=REGULAR ADMIN"`
}

func TestStruct_Valid(t *testing.T) {
	dob := time.Now().AddDate(-20, 0, 0)
	email := "ada@example.com"

	err := Struct(New(), signup{Name: "Ada", Email: &email, Dob: &dob, Password: "password1", UserType: "REGULAR"})
	assert.NoError(t, err)
}

func TestStruct_FieldMessages(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	email := "not-an-email"

	blank := "   "

	err := Struct(New(), signup{Surname: &blank, Email: &email, Dob: &future, Password: "short", UserType: "ROOT"})
	require.ErrorIs(t, err, errs.ErrValidation)

	fields := errs.ErrorFields(err)
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Surname must not be blank", fields["surname"])
	assert.Equal(t, "Email must be a valid email address", fields["email"])
	assert.Equal(t, "Date of birth must be in the past", fields["dob"])
	assert.Equal(t, "Password must be at least 8 characters long", fields["password"])
	assert.Equal(t, "User type must be one of: REGULAR, ADMIN", fields["user_type"])
}

func TestFromError_NonValidatorError(t *testing.T) {
	assert.NoError(t, FromError(nil))

	err := FromError(errors.New("unexpected EOF"))
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "Malformed request body", errs.ErrorFields(err)["body"])
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Name", Label("Name"))
	assert.Equal(t, "User type", Label("UserType"))
	assert.Equal(t, "Date of birth", Label("Dob"))
	assert.Equal(t, "Followee id", Label("FolloweeID"))
}
