package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("jobId", "123")

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("jobId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: jobId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("route")

	assert.Equal(t, "route", err.ParamName)
	assert.Equal(t, "value is required: route", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cause := errors.New("field missing from payload")
	withCause := errs.NewValueIsRequiredErrorWithCause("route", cause)
	assert.Equal(t, "value is required: route (cause: field missing from payload)", withCause.Error())
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("status")

	assert.Equal(t, "status", err.ParamName)
	assert.Equal(t, "value is invalid: status", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cause := errors.New("unknown value")
	withCause := errs.NewValueIsInvalidErrorWithCause("status", cause)
	assert.Equal(t, cause, withCause.Cause)
	assert.Equal(t, "value is invalid: status (cause: unknown value)", withCause.Error())
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("actor-1", "update job status")

	assert.Equal(t, "actor-1", err.ActorID)
	assert.Equal(t, "update job status", err.Action)
	assert.Equal(t, "permission denied: actor actor-1 may not update job status", err.Error())
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("job", "shipped")

	assert.Equal(t, "job", err.Subject)
	assert.Equal(t, "shipped", err.State)
	assert.Equal(t,
		"operation is forbidden in the current state: job is shipped",
		err.Error())
	require.ErrorIs(t, err, errs.ErrOperationForbidden)
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("trackingId", "SHIP-20250101-AB12C")

	assert.Equal(t, "conflict: trackingId SHIP-20250101-AB12C already exists", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)

	cause := errors.New("duplicate key value violates unique constraint")
	withCause := errs.NewConflictErrorWithCause("trackingId", "SHIP-20250101-AB12C", cause)
	assert.Equal(t, cause, withCause.Cause)
	require.ErrorIs(t, withCause, errs.ErrConflict)
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("notes", errors.New("line one\nline two"))

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("jobId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("weight"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewPermissionDeniedError("a", "delete job"), errs.ErrPermissionDenied)
	require.ErrorIs(t, errs.NewInvalidStateError("invoice", "Paid"), errs.ErrOperationForbidden)
	require.ErrorIs(t, errs.NewConflictError("invoiceNumber", "INV-1"), errs.ErrConflict)
}
