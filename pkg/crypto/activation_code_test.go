package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateActivationCode(t *testing.T) {
	code, err := GenerateActivationCode()
	assert.NoError(t, err)
	assert.Len(t, code, ActivationCodeLength)
	for _, c := range code {
		assert.Contains(t, activationCodeAlphabet, string(c))
	}
}

func TestGenerateActivationCode_RandFailure(t *testing.T) {
	origRandRead := randomRead
	t.Cleanup(func() { randomRead = origRandRead })

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err := GenerateActivationCode()
	assert.Error(t, err)
}

func TestGenerateActivationCode_Deterministic(t *testing.T) {
	origRandRead := randomRead
	t.Cleanup(func() { randomRead = origRandRead })

	randomRead = func(b []byte) (int, error) {
		for i := range b {
			b[i] = byte(i)
		}
		return len(b), nil
	}
	code, err := GenerateActivationCode()
	assert.NoError(t, err)
	assert.Equal(t, "ABCDEFGH", code)
}
