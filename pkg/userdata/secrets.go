package userdata

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"maps"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	PasswordField        = "password"
	NewPasswordField     = "newPassword"
	CurrentPasswordField = "currentPassword"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = bcrypt.DefaultCost

// Prepare turns submitted form values into fields fit for storage.
// Confirmation fields and the current password are dropped; password and
// newPassword are hashed with bcrypt and stored as password.
// A cost below bcrypt.MinCost uses DefaultBcryptCost.
func Prepare(fields map[string]string, cost int) (map[string]string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}

	out := maps.Clone(fields)
	if out == nil {
		out = map[string]string{}
	}
	for name := range out {
		if _, ok := validator.ConfirmsField(name); ok {
			delete(out, name)
		}
	}
	delete(out, CurrentPasswordField)

	plain := out[PasswordField]
	if p := out[NewPasswordField]; p != "" {
		plain = p
	}
	delete(out, NewPasswordField)
	delete(out, PasswordField)

	if plain != "" {
		hash, err := bcrypt.GenerateFromPassword(prehash(plain), cost)
		if err != nil {
			return nil, errors.Join(ErrHashPassword, err)
		}
		out[PasswordField] = string(hash)
	}
	return out, nil
}

// CheckPassword compares password with the hash stored in r.
// A record without a stored password accepts any input.
func CheckPassword(r Record, password string) error {
	hash := r.Get(PasswordField)
	if hash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)); err != nil {
		return errors.Join(ErrPasswordMismatch, err)
	}
	return nil
}

// prehash digests a password to a fixed 44 bytes so inputs of any length fit
// bcrypt's 72-byte limit.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
