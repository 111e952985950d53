package domain

// AdminID uniquely identifies an administrator. Admin IDs double as
// authorization tokens: a caller whose authenticated identity matches an
// existing AdminRecord ID is an administrator.
type AdminID string

// NotificationPrefs holds per-channel notification opt-outs for an admin.
// A nil flag means the admin never expressed a preference.
type NotificationPrefs struct {
	// Email controls registration notification mail. Only an explicit false
	// disables it; absent means enabled.
	Email *bool `json:"email,omitempty"`
}

// AdminRecord is an administrator entry in the admin directory.
type AdminRecord struct {
	ID    AdminID `json:"id"`
	Email string  `json:"email"`

	NotificationPrefs NotificationPrefs `json:"notificationPrefs,omitempty"`
}

// WantsEmail reports whether the admin should receive registration
// notification mail: true when the preference is unset or explicitly true.
func (a AdminRecord) WantsEmail() bool {
	return a.NotificationPrefs.Email == nil || *a.NotificationPrefs.Email
}
