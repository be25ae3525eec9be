// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "github.com/pkg/errors"

// MaxPasswordBytes is the longest password the hasher accepts, counted in
// bytes of its UTF-8 encoding.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for passwords over MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing digest from a plaintext password.
	// Two calls with the same input return different digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest. A malformed digest
	// yields false, never an error.
	Check(password, hash string) bool
}
