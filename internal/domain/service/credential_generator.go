package service

// CredentialGenerator produces the one-time password handed to a customer
// account created by an administrator. The generated value is returned to the
// caller exactly once and only its hash is persisted.
type CredentialGenerator interface {
	// Generate returns a new random credential in plaintext.
	Generate() (string, error)
}
