package argon2

// Key derives a key using Argon2i, matching the naming convention of
// golang.org/x/crypto/argon2 (this package is independent of it, but
// there's no reason to invent new names for the same operation).
func Key(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return Hash2i(password, salt, time, memory, uint32(threads), keyLen)
}

// DKey derives a key using Argon2d.
func DKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return Hash2d(password, salt, time, memory, uint32(threads), keyLen)
}

// IDKey derives a key using Argon2id.
func IDKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return Hash2id(password, salt, time, memory, uint32(threads), keyLen)
}
