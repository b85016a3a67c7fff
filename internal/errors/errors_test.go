package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/spellcast/internal/errors"
)

func TestConstructorsSetCodes(t *testing.T) {
	tests := []struct {
		name  string
		err   *errors.Error
		check func(error) bool
	}{
		{"not found", errors.NotFound("missing"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgument("bad input"), errors.IsInvalidArgument},
		{"resource exhausted", errors.ResourceExhausted("out of mana"), errors.IsResourceExhausted},
		{"failed precondition", errors.FailedPrecondition("not ready"), errors.IsFailedPrecondition},
		{"out of range", errors.OutOfRange("too many"), errors.IsOutOfRange},
		{"internal", errors.Internal("broken"), errors.IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	inner := errors.NotFound("spell not found").WithMeta("spell", "fireball")
	wrapped := errors.Wrap(inner, "failed to load spell")

	assert.True(t, errors.IsNotFound(wrapped), "wrapping keeps the original code")
	assert.Equal(t, "fireball", errors.GetMeta(wrapped)["spell"])
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapPlainErrorBecomesInternal(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("dial tcp: connection refused"), "redis lookup failed")
	assert.True(t, errors.IsInternal(wrapped))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestWrapWithCodeOverridesCode(t *testing.T) {
	inner := errors.NotFound("missing")
	wrapped := errors.WrapWithCode(inner, errors.CodeFailedPrecondition, "cannot proceed")

	assert.True(t, errors.IsFailedPrecondition(wrapped))
	assert.False(t, errors.IsNotFound(wrapped))
}

func TestGetMetaThroughWrapping(t *testing.T) {
	err := errors.ResourceExhausted("cast too expensive").
		WithMeta("required_mp", 6).
		WithMeta("available_mp", 5)

	meta := errors.GetMeta(errors.Wrap(err, "cast rejected"))
	require.NotNil(t, meta)
	assert.Equal(t, 6, meta["required_mp"])
	assert.Equal(t, 5, meta["available_mp"])
}

func TestGetMetaOnPlainError(t *testing.T) {
	assert.Nil(t, errors.GetMeta(stderrors.New("plain")))
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("CasterID")
	vb.Fieldf("MPCost", "must be at least %d", 1)

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "CasterID")
}

func TestValidationBuilderEmptyIsNil(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestValidateHelpers(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", "  ", vb)
	errors.ValidateRange("ExtraMP", 12, 0, 10, vb)
	errors.ValidateEnum("Environment", "vacuum", []string{"normal", "underwater"}, vb)

	err := vb.Build()
	require.Error(t, err)
	for _, field := range []string{"Name", "ExtraMP", "Environment"} {
		assert.Contains(t, err.Error(), field)
	}
}
