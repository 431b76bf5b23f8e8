package auth

import (
	"crypto/rand"
	"math/big"

	"tourdesk/config"
	"tourdesk/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultCredentialLength = 16

	// No ambiguous characters (0/O, 1/l) since the value is relayed to the
	// customer out of band.
	credentialAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// credentialGenerator produces random one-time passwords using crypto/rand.
// It replaces the fixed default credential the legacy system assigned to
// administrator-created customers.
type credentialGenerator struct {
	length int
}

// NewCredentialGenerator is the constructor for credentialGenerator.
func NewCredentialGenerator(cfg *config.Config) service.CredentialGenerator {
	length := defaultCredentialLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.GeneratedPWLength > 0 {
		length = cfg.Auth.GeneratedPWLength
	}

	return &credentialGenerator{length: length}
}

// Generate returns a new random credential in plaintext.
func (g *credentialGenerator) Generate() (string, error) {
	out := make([]byte, g.length)
	max := big.NewInt(int64(len(credentialAlphabet)))

	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random credential byte")
		}
		out[i] = credentialAlphabet[n.Int64()]
	}

	return string(out), nil
}
