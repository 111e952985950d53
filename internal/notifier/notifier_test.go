package notifier_test

import (
	"adminops/internal/notifier"
	"adminops/pkg/domain"
	"adminops/pkg/logger"
	"adminops/pkg/mailer"
	"adminops/pkg/serrors"
	"adminops/pkg/storage/storagetest"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// transportFunc allows using a function as a mailer.Transport.
type transportFunc func(ctx context.Context, msg mailer.Message) error

func (f transportFunc) Send(ctx context.Context, msg mailer.Message) error { return f(ctx, msg) }

func boolPtr(b bool) *bool { return &b }

func adminDirectory() []domain.AdminRecord {
	return []domain.AdminRecord{
		{ID: "admin1", Email: "a@x.com", NotificationPrefs: domain.NotificationPrefs{Email: boolPtr(true)}},
		{ID: "admin2", Email: "b@x.com"}, // preference never set, treated as enabled
		{ID: "admin3", Email: "c@x.com", NotificationPrefs: domain.NotificationPrefs{Email: boolPtr(false)}},
		{ID: "admin4", Email: "not-an-email"},
		{ID: "admin5", Email: "a@x.com"}, // duplicate address
	}
}

func testOptions() notifier.Options {
	return notifier.Options{
		Account:        "notify@x.com",
		Password:       "secret",
		SenderName:     "MangoSense Notifications",
		AdminPortalURL: "https://mango-leaf-analyzer.web.app/",
	}
}

func testUser() domain.UserAccount {
	return domain.UserAccount{
		ID:       "u1",
		Email:    "new@user.com",
		FullName: "New User",
		Role:     "user",
		Status:   "pending",
	}
}

func TestNotifier_Notify_SendsToEligibleAdmins(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	store := &storagetest.Fake{
		AdminsFn: func(ctx context.Context) ([]domain.AdminRecord, error) {
			return adminDirectory(), nil
		},
	}

	var sent []mailer.Message
	transport := transportFunc(func(ctx context.Context, msg mailer.Message) error {
		sent = append(sent, msg)

		return nil
	})

	n := notifier.New(store, transport, testOptions())
	require.NoError(t, n.Notify(context.Background(), testUser()))

	require.Len(t, sent, 1)
	msg := sent[0]
	// opted-out, malformed and duplicate addresses are excluded
	require.Equal(t, []string{"a@x.com", "b@x.com"}, msg.To)
	require.Equal(t, "New user registration received", msg.Subject)
	require.Equal(t, "MangoSense Notifications", msg.From.Name)
	require.Equal(t, "notify@x.com", msg.From.Email)
	require.Equal(t, "new@user.com", msg.ReplyTo, "replies should reach the registering user")
	require.Contains(t, msg.Text, "Name: New User")
	require.Contains(t, msg.HTML, "Open Admin Portal")
}

func TestNotifier_Notify_NoRecipients(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	off := boolPtr(false)
	store := &storagetest.Fake{
		AdminsFn: func(ctx context.Context) ([]domain.AdminRecord, error) {
			return []domain.AdminRecord{
				{ID: "admin1", Email: "a@x.com", NotificationPrefs: domain.NotificationPrefs{Email: off}},
				{ID: "admin2", Email: "nonsense"},
			}, nil
		},
	}

	transport := transportFunc(func(ctx context.Context, msg mailer.Message) error {
		t.Fatal("transport must not be called without recipients")

		return nil
	})

	n := notifier.New(store, transport, testOptions())
	require.NoError(t, n.Notify(context.Background(), testUser()))
}

func TestNotifier_Notify_MissingCredentials(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	store := &storagetest.Fake{
		AdminsFn: func(ctx context.Context) ([]domain.AdminRecord, error) {
			return adminDirectory(), nil
		},
	}

	transport := transportFunc(func(ctx context.Context, msg mailer.Message) error {
		t.Fatal("transport must not be called without credentials")

		return nil
	})

	opts := testOptions()
	opts.Password = ""

	n := notifier.New(store, transport, opts)
	// absent credentials skip the notification without failing the job
	require.NoError(t, n.Notify(context.Background(), testUser()))
}

func TestNotifier_Notify_TransportFailurePropagates(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	store := &storagetest.Fake{
		AdminsFn: func(ctx context.Context) ([]domain.AdminRecord, error) {
			return adminDirectory(), nil
		},
	}

	transport := transportFunc(func(ctx context.Context, msg mailer.Message) error {
		return errors.New("smtp: connection refused")
	})

	n := notifier.New(store, transport, testOptions())
	err := n.Notify(context.Background(), testUser())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrMailSendFailure)
	require.Contains(t, err.Error(), "connection refused")
}

func TestNotifier_Notify_DirectoryError(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	store := &storagetest.Fake{
		AdminsFn: func(ctx context.Context) ([]domain.AdminRecord, error) {
			return nil, errors.New("db down")
		},
	}

	transport := transportFunc(func(ctx context.Context, msg mailer.Message) error {
		t.Fatal("transport must not be called when the directory cannot be read")

		return nil
	})

	n := notifier.New(store, transport, testOptions())
	require.Error(t, n.Notify(context.Background(), testUser()))
}
