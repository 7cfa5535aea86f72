// Package service defines interfaces for capabilities the domain needs but does not implement.
// Infrastructure adapters satisfy them and fx wires the adapters in.
package service

// PINHasher hashes the account PIN a switcher gives us to authorize a number transfer.
// The plaintext PIN is never stored.
type PINHasher interface {
	// Hash generates a salted hash from a plaintext PIN.
	Hash(pin string) (string, error)

	// Check compares a plaintext PIN with a hash to see if they match.
	Check(pin, hash string) bool
}
