// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderLocal marks accounts created through email/password registration.
// Any other value is the identifier of the external identity provider
// (e.g. "google") that first authenticated the account.
const ProviderLocal = "local"

// User is the identity unit of the system. Email is the globally unique,
// case-normalized identifier; PasswordHash is empty for accounts that only
// authenticate through an external provider.
type User struct {
	ID             uuid.UUID // The unique identifier for this account.
	Email          string    // Primary identifier, stored lowercased.
	Name           string    // Display name.
	PasswordHash   string    // bcrypt digest, empty for external-provider accounts.
	Roles          Roles     // Ordered set of granted roles.
	Provider       string    // ProviderLocal or an external provider id.
	ProviderUserID string    // Provider-assigned external id, empty for local accounts.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}

// NormalizeEmail lowercases and trims an email so lookups and uniqueness
// checks always compare the same representation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasLocalCredential reports whether the account can authenticate with a password.
func (u *User) HasLocalCredential() bool {
	return u.PasswordHash != ""
}
