package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PlaceholderHash marks an account whose password was never set.
const PlaceholderHash = "hashed_password_here"

// HashPassword fails for passwords bcrypt cannot hash, e.g. longer than 72 bytes.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// HashOrPlaceholder hashes pw, or returns PlaceholderHash when pw is empty.
func HashOrPlaceholder(pw string) (string, error) {
	if pw == "" {
		return PlaceholderHash, nil
	}
	return HashPassword(pw)
}

func NewID() string { return uuid.NewString() }
