package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
)

func TestToGRPCError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errors.ToGRPCError(nil))
	})

	t.Run("custom error maps its code", func(t *testing.T) {
		err := errors.ToGRPCError(errors.PermissionDenied("only the party leader can disband the party"))

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.PermissionDenied, st.Code())
		assert.Equal(t, "only the party leader can disband the party", st.Message())
	})

	t.Run("foreign error becomes internal", func(t *testing.T) {
		st, ok := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
	})

	t.Run("existing status passes through", func(t *testing.T) {
		orig := status.Error(codes.Unavailable, "store down")
		assert.Equal(t, orig, errors.ToGRPCError(orig))
	})
}

func TestCode_GRPCCode(t *testing.T) {
	assert.Equal(t, codes.NotFound, errors.CodeNotFound.GRPCCode())
	assert.Equal(t, codes.Aborted, errors.CodeAborted.GRPCCode())
	assert.Equal(t, codes.DataLoss, errors.CodeDataLoss.GRPCCode())
	assert.Equal(t, codes.Unknown, errors.Code("BOGUS").GRPCCode())
}
