package crypto

import (
	"fmt"
)

// activationCodeAlphabet covers the full uppercase alphanumeric range.
const activationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ActivationCodeLength is the fixed length of generated activation codes.
const ActivationCodeLength = 8

// GenerateActivationCode returns a random 8-character uppercase alphanumeric
// code. Uniqueness across profiles is the caller's responsibility.
func GenerateActivationCode() (string, error) {
	bytes := make([]byte, ActivationCodeLength)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate activation code: %w", err)
	}
	code := make([]byte, ActivationCodeLength)
	for i, b := range bytes {
		code[i] = activationCodeAlphabet[int(b)%len(activationCodeAlphabet)]
	}
	return string(code), nil
}
