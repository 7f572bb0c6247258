// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies account passwords. It hides the
// concrete algorithm so the registration and login use cases stay free of
// bcrypt details.
type PasswordHasher interface {
	// Hash produces a salted hash of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
