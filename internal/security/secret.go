package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	MinSecretLength = 32
	secretAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrSecretMissing     = errors.New("secret is empty")
	ErrSecretPlaceholder = errors.New("secret uses a documented placeholder")
	ErrSecretTooShort    = errors.New("secret is shorter than 32 characters")

	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                                 {},
	"replace_with_at_least_32_random_characters":              {},
	"dev-secret-change-in-production-use-openssl-rand-hex-32": {},
}

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	var builder strings.Builder
	builder.Grow(length)
	limit := big.NewInt(int64(len(alphabet)))
	for builder.Len() < length {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[position.Int64()])
	}
	return builder.String(), nil
}

// EphemeralSecret generates a signing secret for development runs. Sessions signed with it do
// not survive a restart.
func EphemeralSecret() (string, error) {
	return RandomString(2*MinSecretLength, secretAlphabet)
}

func ValidateSecret(secret string) error {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return ErrSecretMissing
	}
	if _, placeholder := placeholderSecrets[strings.ToLower(trimmed)]; placeholder {
		return ErrSecretPlaceholder
	}
	if len(trimmed) < MinSecretLength {
		return ErrSecretTooShort
	}
	return nil
}
