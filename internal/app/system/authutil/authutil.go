// internal/app/system/authutil/authutil.go
package authutil

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6
	// MaxPasswordLength is the maximum accepted password length.
	MaxPasswordLength = 128

	bcryptCost = 12
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordCommon   = errors.New("password is too common")
)

// commonPasswords are rejected outright regardless of length.
var commonPasswords = map[string]struct{}{
	"123456":   {},
	"password": {},
	"qwerty":   {},
	"abc123":   {},
	"iloveyou": {},
	"letmein":  {},
	"football": {},
	"welcome":  {},
	"monkey":   {},
	"dragon":   {},
}

// ValidatePassword enforces the password policy: length bounds and a
// short deny-list of the most common passwords (case-insensitive).
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(pw) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if _, bad := commonPasswords[strings.ToLower(pw)]; bad {
		return ErrPasswordCommon
	}
	return nil
}

// PasswordRules describes the policy for user-facing messages.
func PasswordRules() string {
	return fmt.Sprintf("Passwords must be %d-%d characters and not a commonly used password.",
		MinPasswordLength, MaxPasswordLength)
}

// HashPassword hashes a password using bcrypt with a cost of 12.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
