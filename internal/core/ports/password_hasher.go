package ports

// PasswordHasher is a one-way salted hash primitive. Hashing the same
// plaintext twice yields different records (random salt); both verify.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext reproduces the stored record. A
	// structurally malformed record returns domain.ErrInvalidHashFormat,
	// never a silent false.
	Verify(plaintext, record string) (bool, error)
}
