package service

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

// dummyHash is compared against when the email is unknown so both login
// failures cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("growthai-dummy-password"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail accepts a bare address only, not "Name <addr>".
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
