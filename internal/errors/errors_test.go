package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "monster not found")
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "monster not found", err.Message)
	assert.Equal(t, "NOT_FOUND: monster not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("drop table not found")
	wrapped := errors.Wrap(inner, "failed to resolve loot")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("redis: connection refused"), "failed to save player")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.True(t, errors.IsInternal(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "should be nil"))
}

func TestWrapWithCode(t *testing.T) {
	inner := stderrors.New("key does not exist")
	wrapped := errors.WrapWithCode(inner, errors.CodeNotFound, "player not found")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, "player not found", errors.GetMessage(wrapped))
}

func TestWithMeta(t *testing.T) {
	err := errors.FailedPrecondition("ability is on cooldown").
		WithMeta("ability_id", "poison_strike").
		WithMeta("remaining_seconds", 4.2)

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, "poison_strike", meta["ability_id"])
	assert.Equal(t, 4.2, meta["remaining_seconds"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("not in combat")))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgumentf("invalid dice notation: %s", "2x6")))
	assert.True(t, errors.IsFailedPrecondition(errors.FailedPrecondition("already in combat")))
	assert.False(t, errors.IsNotFound(errors.Internal("boom")))
	assert.False(t, errors.IsNotFound(nil))
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Clock").
		RequiredField("PlayerRepo").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "Clock")
	assert.Contains(t, fields, "PlayerRepo")
}

func TestValidationBuilder_Empty(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("BOGUS"), codes.Unknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.code.GRPCCode(), "code %s", tc.code)
	}
}

func TestToGRPCError(t *testing.T) {
	assert.NoError(t, errors.ToGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(errors.NotFound("monster not found")))
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "monster not found", st.Message())

	// A wrapped error keeps the inner code.
	wrapped := errors.Wrap(errors.FailedPrecondition("already in combat"), "failed to start fight")
	st, ok = status.FromError(errors.ToGRPCError(wrapped))
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())

	// Plain errors degrade to Internal.
	st, ok = status.FromError(errors.ToGRPCError(stderrors.New("boom")))
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())

	// Existing status errors pass through untouched.
	orig := status.Error(codes.Unavailable, "redis down")
	assert.Equal(t, orig, errors.ToGRPCError(orig))
}

func TestGRPCStatus(t *testing.T) {
	assert.Equal(t, codes.OK, errors.GRPCStatus(nil).Code())
	assert.Equal(t, codes.NotFound, errors.GRPCStatus(errors.NotFound("gone")).Code())
	assert.Equal(t, codes.Internal, errors.GRPCStatus(stderrors.New("boom")).Code())
}
