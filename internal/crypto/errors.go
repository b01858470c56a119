package crypto

import "errors"

var (
	// ErrHasherMisconfiguration means the algorithm-to-hasher mapping is not
	// total over the supported algorithms. It is fatal at startup.
	ErrHasherMisconfiguration = errors.New("password hasher misconfiguration")

	ErrSecretTooLong = errors.New("secret exceeds the maximum length supported by the hasher")
	ErrMalformedHash = errors.New("malformed password hash")
	ErrInvalidParams = errors.New("invalid hasher parameters")
)
