package deleter_test

import (
	"adminops/internal/deleter"
	"adminops/pkg/domain"
	"adminops/pkg/logger"
	"adminops/pkg/serrors"
	"adminops/pkg/storage/storagetest"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// providerFunc allows using a function as an identity.Provider.
type providerFunc func(ctx context.Context, id domain.UserID) error

func (f providerFunc) DeleteUser(ctx context.Context, id domain.UserID) error { return f(ctx, id) }

// tracker records which mutating operations ran so precondition tests can
// assert nothing was touched.
type tracker struct {
	mu                  sync.Mutex
	identityDeleted     []domain.UserID
	usersDeleted        []domain.UserID
	scanRequestsDeleted []domain.ScanRequestID
}

func newFixture(user *domain.UserAccount, pending []domain.ScanRequest) (*storagetest.Fake, providerFunc, *tracker) {
	tr := &tracker{}

	store := &storagetest.Fake{
		AdminByIDFn: func(ctx context.Context, id domain.AdminID) (*domain.AdminRecord, error) {
			if id == "admin1" {
				return &domain.AdminRecord{ID: "admin1", Email: "a@x.com"}, nil
			}

			return nil, nil
		},
		UserByIDFn: func(ctx context.Context, id domain.UserID) (*domain.UserAccount, error) {
			return user, nil
		},
		DeleteUserFn: func(ctx context.Context, id domain.UserID) error {
			tr.mu.Lock()
			defer tr.mu.Unlock()
			tr.usersDeleted = append(tr.usersDeleted, id)

			return nil
		},
		PendingScanRequestsByUserFn: func(ctx context.Context, userID domain.UserID) ([]domain.ScanRequest, error) {
			return pending, nil
		},
		DeleteScanRequestFn: func(ctx context.Context, id domain.ScanRequestID) error {
			tr.mu.Lock()
			defer tr.mu.Unlock()
			tr.scanRequestsDeleted = append(tr.scanRequestsDeleted, id)

			return nil
		},
	}

	provider := providerFunc(func(ctx context.Context, id domain.UserID) error {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		tr.identityDeleted = append(tr.identityDeleted, id)

		return nil
	})

	return store, provider, tr
}

func pendingRequests(userID domain.UserID, n int) []domain.ScanRequest {
	reqs := make([]domain.ScanRequest, n)
	for i := range reqs {
		reqs[i] = domain.ScanRequest{
			ID:     domain.ScanRequestID(uuid.New()),
			UserID: userID,
			Status: domain.ScanRequestStatusPending,
		}
	}

	return reqs
}

func TestDeleter_DeleteAccount_Success(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	user := &domain.UserAccount{ID: "u1", Email: "jane@x.com", FullName: "Jane Doe"}
	pending := pendingRequests("u1", 3)
	store, provider, tr := newFixture(user, pending)

	d := deleter.New(store, provider)
	res, err := d.DeleteAccount(context.Background(), "admin1", "u1")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.Success)
	require.Equal(t, "Successfully deleted user Jane Doe (jane@x.com)", res.Message)
	require.Equal(t, 3, res.DeletedPendingScanRequests)

	require.Equal(t, []domain.UserID{"u1"}, tr.identityDeleted)
	require.Equal(t, []domain.UserID{"u1"}, tr.usersDeleted)
	require.Len(t, tr.scanRequestsDeleted, 3)
}

func TestDeleter_DeleteAccount_Preconditions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	cases := []struct {
		name   string
		caller domain.AdminID
		userID domain.UserID
		kind   error
	}{
		{name: "unauthenticated", caller: "", userID: "u1", kind: serrors.ErrAuthenticationRequired},
		{name: "not an admin", caller: "intruder", userID: "u1", kind: serrors.ErrUnauthorized},
		{name: "empty user id", caller: "admin1", userID: "", kind: serrors.ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, provider, tr := newFixture(&domain.UserAccount{ID: "u1"}, pendingRequests("u1", 1))

			d := deleter.New(store, provider)
			res, err := d.DeleteAccount(context.Background(), tc.caller, tc.userID)
			require.Nil(t, res)
			require.ErrorIs(t, err, tc.kind)

			// nothing may be mutated on a failed precondition
			require.Empty(t, tr.identityDeleted)
			require.Empty(t, tr.usersDeleted)
			require.Empty(t, tr.scanRequestsDeleted)
		})
	}
}

func TestDeleter_DeleteAccount_UnknownUserPlaceholders(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	store, provider, tr := newFixture(nil, nil)

	d := deleter.New(store, provider)
	res, err := d.DeleteAccount(context.Background(), "admin1", "ghost")
	require.NoError(t, err)
	require.Equal(t, "Successfully deleted user unknown (unknown)", res.Message)
	require.Equal(t, 0, res.DeletedPendingScanRequests)

	// cleanup still runs for users without a directory row
	require.Equal(t, []domain.UserID{"ghost"}, tr.identityDeleted)
	require.Equal(t, []domain.UserID{"ghost"}, tr.usersDeleted)
}

func TestDeleter_DeleteAccount_MissingIdentityTolerated(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	user := &domain.UserAccount{ID: "u1", Email: "jane@x.com", FullName: "Jane Doe"}
	store, _, tr := newFixture(user, nil)

	provider := providerFunc(func(ctx context.Context, id domain.UserID) error {
		return serrors.With(serrors.ErrNotFound, "identity not found")
	})

	d := deleter.New(store, provider)
	res, err := d.DeleteAccount(context.Background(), "admin1", "u1")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, []domain.UserID{"u1"}, tr.usersDeleted)
}

func TestDeleter_DeleteAccount_IdentityFailureAborts(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	user := &domain.UserAccount{ID: "u1", Email: "jane@x.com", FullName: "Jane Doe"}
	store, _, tr := newFixture(user, pendingRequests("u1", 2))

	provider := providerFunc(func(ctx context.Context, id domain.UserID) error {
		return errors.New("idp unavailable")
	})

	d := deleter.New(store, provider)
	res, err := d.DeleteAccount(context.Background(), "admin1", "u1")
	require.Nil(t, res)
	require.ErrorIs(t, err, serrors.ErrIdentityProvider)

	// the user row must survive when the identity could not be removed
	require.Empty(t, tr.usersDeleted)
	require.Empty(t, tr.scanRequestsDeleted)
}

func TestDeleter_DeleteAccount_ScanRequestFailure(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	user := &domain.UserAccount{ID: "u1", Email: "jane@x.com", FullName: "Jane Doe"}
	store, provider, _ := newFixture(user, pendingRequests("u1", 2))
	store.DeleteScanRequestFn = func(ctx context.Context, id domain.ScanRequestID) error {
		return errors.New("row locked")
	}

	d := deleter.New(store, provider)
	res, err := d.DeleteAccount(context.Background(), "admin1", "u1")
	require.Nil(t, res)
	require.ErrorIs(t, err, serrors.ErrDeletionFailed)
	require.Contains(t, err.Error(), "row locked")
}
