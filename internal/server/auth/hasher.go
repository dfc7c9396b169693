// Package auth implements the credential core of the VetLig server:
// password hashing, JWT issuance/verification, and resolving a presented
// token to a user record.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher produces and checks salted bcrypt credentials. bcrypt
// embeds a random per-call salt in its output, so hashing the same password
// twice yields different strings that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the given work factor; cost 0
// selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt credential for the plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches the stored credential. A malformed
// credential counts as a mismatch, not an error: the caller only ever needs
// to know whether to let the login through.
func (h *PasswordHasher) Verify(password, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}
