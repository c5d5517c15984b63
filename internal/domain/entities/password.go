package entities

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
)

// Argon2id parameters. They match the defaults of the hasher the first
// deployment used, so stored hashes keep verifying.
var hashParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Upper bounds for parameters read back from a stored hash.
const (
	maxHashMemory     uint32 = 256 * 1024
	maxHashIterations uint32 = 10
)

var ErrMalformedHash = errors.New("malformed argon2id hash")

// HashPassword returns a PHC string: $argon2id$v=19$m=..,t=..,p=..$salt$key
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, hashParams)
}

// VerifyPassword checks password against the parameters stored in encoded.
// Parameters outside the accepted range are rejected before any key is
// derived.
func VerifyPassword(encoded, password string) (bool, error) {
	if !strings.HasPrefix(encoded, "$argon2id$") {
		return false, ErrMalformedHash
	}

	params, _, key, err := argon2id.DecodeHash(encoded)
	if err != nil {
		return false, ErrMalformedHash
	}
	if !acceptableParams(params) || len(key) == 0 {
		return false, ErrMalformedHash
	}

	ok, err := argon2id.ComparePasswordAndHash(password, encoded)
	if err != nil {
		return false, ErrMalformedHash
	}
	return ok, nil
}

func acceptableParams(p *argon2id.Params) bool {
	return p.Iterations >= 1 && p.Iterations <= maxHashIterations &&
		p.Parallelism >= 1 &&
		p.Memory >= 8*uint32(p.Parallelism) && p.Memory <= maxHashMemory
}
