package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher encodes raw secrets into self-describing stored hashes and
// verifies raw secrets against them.
//
// An encoded value carries everything Verify needs (salt and, where the
// scheme has them, cost parameters), so a hash produced by one process can
// be verified by another configured differently.
type PasswordHasher interface {
	// Encode returns a freshly salted hash of secret. Two calls with the same
	// secret are expected to return different strings.
	Encode(secret string) (string, error)

	// Verify reports whether encoded was produced by Encode from secret.
	// A well-formed hash that does not match yields (false, nil); a hash the
	// scheme cannot parse yields false and an error wrapping ErrMalformedHash.
	Verify(secret, encoded string) (bool, error)
}
