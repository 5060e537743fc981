// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a freshly salted, self-describing encoded hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash.
	// It returns false for a wrong password and for an undecodable hash alike,
	// so callers cannot distinguish the two cases.
	Check(password, encoded string) bool
}
