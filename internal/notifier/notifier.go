package notifier

import (
	"adminops/internal/config"
	"adminops/pkg/domain"
	"adminops/pkg/logger"
	"adminops/pkg/mailer"
	"adminops/pkg/metrics"
	"adminops/pkg/serrors"
	"adminops/pkg/storage"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Options configure the notification sender identity and email content.
// These settings are typically derived from application configuration.
type Options struct {
	// Account is the mail account notifications are sent from. Together with
	// Password it doubles as the credential presence check: when either is
	// empty, notifications are skipped instead of failed.
	Account string
	// Password is the mail account password.
	Password string
	// SenderName is the display name on outgoing notifications.
	SenderName string
	// AdminPortalURL is the dashboard link included in every notification.
	AdminPortalURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Account:        cfg.Mail.Account,
		Password:       cfg.Mail.Password,
		SenderName:     cfg.Mail.SenderName,
		AdminPortalURL: cfg.Mail.AdminPortalURL,
	}
}

// notifier is the concrete implementation of the Notifier interface. It reads
// the admin directory from storage and hands composed messages to the mail
// transport.
type notifier struct {
	options   Options
	storage   storage.Storage
	transport mailer.Transport
}

// Notify emails every eligible admin about the given registration. Eligibility
// is decided per admin: the email notification preference must be enabled or
// never set, and the stored address must at least look like an email address.
// Duplicate addresses receive a single copy.
func (n notifier) Notify(ctx context.Context, user domain.UserAccount) error {
	admins, err := n.storage.Admins(ctx)
	if err != nil {
		return fmt.Errorf("could not load admin directory: %w", err)
	}

	recipients := recipientEmails(admins)
	if len(recipients) == 0 {
		logger.Info(ctx, "no eligible admin recipients, skipping notification",
			zap.String("userID", string(user.ID)))
		metrics.NotificationsSent.WithLabelValues("skipped").Inc()

		return nil
	}

	if n.options.Account == "" || n.options.Password == "" {
		// Returning nil on purpose: retrying cannot fix absent credentials.
		logger.Error(ctx, "mail credentials are not configured, skipping notification",
			zap.Error(serrors.With(serrors.ErrMailConfigMissing, "mail account or password is empty")))
		metrics.NotificationsSent.WithLabelValues("skipped").Inc()

		return nil
	}

	msg := mailer.Message{
		From:    mailer.Address{Name: n.options.SenderName, Email: n.options.Account},
		To:      recipients,
		ReplyTo: user.Email,
		Subject: notificationSubject,
		Text:    textBody(user, n.options.AdminPortalURL),
		HTML:    htmlBody(user, n.options.AdminPortalURL),
	}

	if err := n.transport.Send(ctx, msg); err != nil {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()

		return serrors.Wrap(serrors.ErrMailSendFailure, err, "could not send notification email")
	}

	logger.Info(ctx, "registration notification sent",
		zap.String("userID", string(user.ID)),
		zap.Int("recipients", len(recipients)))
	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	metrics.NotificationRecipients.Observe(float64(len(recipients)))

	return nil
}

// recipientEmails filters the admin directory down to the unique list of
// addresses that should receive registration notifications. Directory order
// is preserved.
func recipientEmails(admins []domain.AdminRecord) []string {
	seen := make(map[string]struct{}, len(admins))
	var recipients []string
	for _, admin := range admins {
		if !admin.WantsEmail() {
			continue
		}
		// directory entries are not validated on write, skip anything that
		// cannot be an email address
		if !strings.Contains(admin.Email, "@") {
			continue
		}
		if _, ok := seen[admin.Email]; ok {
			continue
		}
		seen[admin.Email] = struct{}{}
		recipients = append(recipients, admin.Email)
	}

	return recipients
}

// New creates a Notifier backed by the provided storage and mail transport.
func New(storage storage.Storage, transport mailer.Transport, options Options) Notifier {
	return &notifier{
		options:   options,
		storage:   storage,
		transport: transport,
	}
}
