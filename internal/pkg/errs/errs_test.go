package errs_test

import (
	"errors"
	"testing"

	"hireboard/internal/pkg/errs"

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

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("capacity", 150, 0, 120)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		assert.Equal(t, "value is invalid: 150 is capacity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("capacity", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is capacity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("values with newlines are sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("invalid semver")
		err := errs.NewVersionIsInvalidError("version", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: invalid semver)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("version")

		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("jobId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("capacity", 150, 0, 120), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("test")), errs.ErrVersionIsInvalid)
}
