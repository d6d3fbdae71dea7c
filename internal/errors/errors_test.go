package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "party not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "party not found", err.Message)
	assert.Equal(t, "NOT_FOUND: party not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("party not found")
	wrapped := errors.Wrap(inner, "failed to load party")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_DefaultsToInternal(t *testing.T) {
	inner := stderrors.New("connection refused")
	wrapped := errors.Wrap(inner, "failed to reach store")

	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	inner := stderrors.New("bad blob")
	wrapped := errors.WrapWithCode(inner, errors.CodeDataLoss, "failed to decode party record")

	assert.True(t, errors.IsDataLoss(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWithMeta(t *testing.T) {
	err := errors.PermissionDenied("only the leader can disband the party").
		WithMeta("guild_id", "guild_1").
		WithMeta("user_id", "user_2")

	meta := errors.GetMeta(err)
	assert.Equal(t, "guild_1", meta["guild_id"])
	assert.Equal(t, "user_2", meta["user_id"])
}

func TestGetCode_NilAndForeign(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "party is full", errors.GetMessage(errors.FailedPrecondition("party is full")))
	assert.Equal(t, "plain", errors.GetMessage(stderrors.New("plain")))
}

func TestTypeCheckers(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgument("x"), errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExists("x"), errors.IsAlreadyExists},
		{"permission denied", errors.PermissionDenied("x"), errors.IsPermissionDenied},
		{"failed precondition", errors.FailedPrecondition("x"), errors.IsFailedPrecondition},
		{"aborted", errors.Aborted("x"), errors.IsAborted},
		{"out of range", errors.OutOfRange("x"), errors.IsOutOfRange},
		{"unavailable", errors.Unavailable("x"), errors.IsUnavailable},
		{"data loss", errors.DataLoss("x"), errors.IsDataLoss},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.check(tc.err))
			assert.False(t, tc.check(nil))
		})
	}
}
