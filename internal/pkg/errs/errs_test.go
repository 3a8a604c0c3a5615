package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "abc123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "abc123", err.ID)
		assert.Equal(t, "object not found: abc123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "abc123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: abc123 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unknown code")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown code)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", -2, 1, 100)

	assert.Equal(t, -2, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 100, err.Max)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("buyerId")

	assert.Equal(t, "value is required: buyerId", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestErrorsCanBeMatchedWithErrorsAs(t *testing.T) {
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, errs.NewObjectNotFoundError("orderId", "abc123"), &notFound)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, errs.NewValueIsInvalidError("status"), &invalid)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, errs.NewValueIsRequiredError("buyerId"), &required)
}

func TestSanitizeStripsNewlines(t *testing.T) {
	err := errs.NewObjectNotFoundError("orderId", "abc\n123")

	assert.Contains(t, err.Error(), "abc 123")
	assert.NotContains(t, err.Error(), "\n")
}
