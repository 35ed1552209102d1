package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string     // argon2id encoded
	RoleID       string     // Foreign key to roles table
	MFAEnabled   *time.Time // Timestamp when TOTP was enabled (nullable)
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
