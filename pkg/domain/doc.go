// Package domain contains the core entities of the admin operations service:
// user accounts awaiting review, administrator records with notification
// preferences, and scan requests owned by users. The types are free of
// infrastructure concerns so they can be shared across packages.
package domain
