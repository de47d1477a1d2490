package errs_test

import (
	"errors"
	"testing"

	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("clientNo", "123")

		assert.Equal(t, "clientNo", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NumericID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("number", int64(42))

		assert.Equal(t, "object not found: 42", err.Error())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("clientNo", "123", cause)

		assert.Equal(t, "clientNo", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: clientNo, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("indice", 1500, 100, 1000)

		assert.Equal(t, "indice", err.ParamName)
		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, 100, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 1500 is indice, min value is 100, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("designation")

		assert.Equal(t, "designation", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: designation", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("designation", cause)

		assert.Equal(t, "designation", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: designation (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestDuplicateKeyError(t *testing.T) {
	t.Run("NewDuplicateKeyError", func(t *testing.T) {
		err := errs.NewDuplicateKeyError("refart", "ART-001")

		assert.Equal(t, "refart", err.ParamName)
		assert.Equal(t, "ART-001", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "duplicate key: ART-001", err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})

	t.Run("NewDuplicateKeyErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewDuplicateKeyErrorWithCause("codeposte", "P001", cause)

		assert.Equal(t, "codeposte", err.ParamName)
		assert.Equal(t, "P001", err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"duplicate key: param is: codeposte, value is: P001 (cause: unique constraint violated)",
			err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "duplicate key", errs.ErrDuplicateKey.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("clientNo", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("indice", 1500, 100, 1000), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("designation"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewDuplicateKeyError("refart", "ART-001"), errs.ErrDuplicateKey)
	})
}
