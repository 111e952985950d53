package serrors_test

import (
	"adminops/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrAuthenticationRequired,
		serrors.ErrUnauthorized,
		serrors.ErrInvalidArgument,
		serrors.ErrIdentityProvider,
		serrors.ErrDeletionFailed,
		serrors.ErrMailConfigMissing,
		serrors.ErrMailSendFailure,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrUnauthorized, serrors.ErrAuthenticationRequired)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("store down")

	e1 := serrors.With(serrors.ErrInvalidArgument, "userId is required")
	require.Equal(t, "userId is required", e1.Error())

	e2 := serrors.Wrap(serrors.ErrDeletionFailed, base, "deleting user")
	require.Equal(t, "deleting user: store down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnauthorized)
	require.Equal(t, "UNAUTHORIZED", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrDeletionFailed, base, "cascade")

	require.ErrorIs(t, e, serrors.ErrDeletionFailed)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrIdentityProvider, base, "deleting identity")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrIdentityProvider, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "not an admin")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "not an admin", e.Message())
	require.Equal(t, base, e.Cause())
}
