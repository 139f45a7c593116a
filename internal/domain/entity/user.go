// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored representation of a login identity: an account's display
// name, its unique login email, and the one-way hash of its password. The
// plaintext password never appears on this struct.
type User struct {
	ID           uuid.UUID // Unique identifier, immutable once assigned.
	Name         string    // Display name, mutable.
	Email        string    // Login key, unique across all accounts, mutable.
	PasswordHash string    // bcrypt hash of the password; never empty for a stored record.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
