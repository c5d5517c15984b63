package entities

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("hunter2")
	require.NoError(t, err)

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "v=19", parts[2])
	assert.Equal(t, "m=65536,t=3,p=4", parts[3])
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("hunter2")
	require.NoError(t, err)

	ok, err := VerifyPassword(encoded, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(encoded, "hunter3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$a2V5",
		"$argon2id$v=16$m=65536,t=3,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=3,p=4$***$a2V5",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$",
	} {
		_, err := VerifyPassword(encoded, "x")
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}

// A small-cost hash checks that the parameters embedded in the encoding are
// the ones used for verification.
func TestVerifyPassword_UsesEncodedParams(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("pw"), salt, 1, 8*1024, 1, 16)
	encoded := "$argon2id$v=19$m=8192,t=1,p=1$" + b64(salt) + "$" + b64(key)

	ok, err := VerifyPassword(encoded, "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_RejectsOutOfRangeParams(t *testing.T) {
	salt := b64([]byte("0123456789abcdef"))
	key := b64([]byte("0123456789abcdef0123456789abcdef"))

	for _, params := range []string{
		"m=65536,t=0,p=4",
		"m=65536,t=3,p=0",
		"m=65536,t=1000,p=4",
		"m=4294967295,t=3,p=4",
		"m=16,t=3,p=4",
	} {
		encoded := "$argon2id$v=19$" + params + "$" + salt + "$" + key
		assert.NotPanics(t, func() {
			_, err := VerifyPassword(encoded, "pw")
			assert.ErrorIs(t, err, ErrMalformedHash, params)
		}, params)
	}
}

func b64(b []byte) string {
	return base64.RawStdEncoding.EncodeToString(b)
}
