package service

// PasswordHasher provides one-way hashing for local credentials. The salt is
// embedded in the digest, so no separate storage is needed; comparison is
// constant-time.
type PasswordHasher interface {
	// Hash computes a salted, deliberately expensive digest of the plaintext.
	Hash(password string) (string, error)

	// Check recomputes with the embedded salt and compares. It never compares
	// plaintext directly.
	Check(password, hash string) bool
}
