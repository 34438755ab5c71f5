package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same input
	// produce different hashes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison runs in
	// constant time with respect to the hash contents.
	Verify(plaintext, hash string) bool
}
