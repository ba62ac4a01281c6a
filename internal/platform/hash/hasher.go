package hash

import "errors"

// ErrPasswordTooLong is returned by Hash when plain exceeds what the algorithm can hash.
var ErrPasswordTooLong = errors.New("hash: password too long")

// Hasher hashes passwords and verifies plain text against a stored hash.
type Hasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hashed. A mismatch is (false, nil);
	// errors are reserved for malformed hashes.
	Verify(plain, hashed string) (bool, error)
}
