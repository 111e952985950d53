package notifier

import (
	"adminops/pkg/domain"
	"fmt"
	"html"
	"strings"
)

// notificationSubject is the fixed subject line for registration notifications.
const notificationSubject = "New user registration received"

// textBody renders the plain text alternative of the notification. Phone and
// address lines are omitted when the user did not provide them.
func textBody(user domain.UserAccount, portalURL string) string {
	var b strings.Builder

	b.WriteString("A new user has registered and is awaiting review:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", user.FullName)
	fmt.Fprintf(&b, "Email: %s\n", user.Email)
	if user.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", user.Phone)
	}
	fmt.Fprintf(&b, "Role: %s\n", user.Role)
	fmt.Fprintf(&b, "Status: %s\n", user.Status)
	if user.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", user.Address)
	}
	b.WriteString("\nPlease sign in to the admin dashboard to review and approve this user.")
	fmt.Fprintf(&b, "\n\nAdmin Portal: %s", portalURL)
	b.WriteString("\nOn mobile: open your browser menu and choose 'Desktop site' for best results.")

	return b.String()
}

// htmlRow renders one label/value row of the details table with the value escaped.
func htmlRow(label, value string) string {
	return fmt.Sprintf(
		`<tr><td style="padding:8px 0; width:160px; color:#475467;">%s</td>`+
			`<td style="padding:8px 0; font-weight:600;">%s</td></tr>`,
		label, html.EscapeString(value))
}

// htmlBody renders the HTML alternative of the notification. All user-supplied
// values are escaped before interpolation.
func htmlBody(user domain.UserAccount, portalURL string) string {
	var rows strings.Builder
	rows.WriteString(htmlRow("Name", user.FullName))
	rows.WriteString(htmlRow("Email", user.Email))
	if user.Phone != "" {
		rows.WriteString(htmlRow("Phone", user.Phone))
	}
	rows.WriteString(htmlRow("Role", user.Role))
	rows.WriteString(htmlRow("Status", user.Status))
	if user.Address != "" {
		rows.WriteString(htmlRow("Address", user.Address))
	}

	return fmt.Sprintf(`<div style="font-family: Arial, Helvetica, sans-serif; background:#f6f8fb; padding:24px;">
  <div style="max-width:620px; margin:0 auto; background:#ffffff; border-radius:8px; overflow:hidden;">
    <div style="background:#16a34a; color:#ffffff; padding:16px 20px;">
      <h2 style="margin:0; font-size:18px;">%s</h2>
    </div>
    <div style="padding:20px; color:#101828;">
      <p style="margin:0 0 12px 0;">A new user has registered and is awaiting review.</p>
      <table role="presentation" cellpadding="0" cellspacing="0" style="width:100%%; border-collapse:collapse;">
        <tbody>%s</tbody>
      </table>
      <p style="margin:16px 0 16px 0; color:#475467;">Please sign in to the admin dashboard to review and approve this user.</p>
      <p style="margin:0 0 16px 0;">
        <a href="%s" style="display:inline-block; background:#16a34a; color:#ffffff; text-decoration:none; padding:10px 14px; border-radius:6px; font-weight:600;">Open Admin Portal</a>
      </p>
      <p style="margin:0; font-size:12px; color:#667085;">If opening on a mobile device, use your browser's <strong>Desktop site</strong> option for the best experience.</p>
    </div>
    <div style="background:#f9fafb; color:#667085; padding:12px 20px; font-size:12px;">
      <p style="margin:0;">This message was sent by MangoSense Admin.</p>
    </div>
  </div>
</div>`, notificationSubject, rows.String(), html.EscapeString(portalURL))
}
