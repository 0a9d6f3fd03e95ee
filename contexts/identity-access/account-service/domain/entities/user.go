package entities

import (
	"net/mail"
	"strings"
	"time"
)

const (
	MaxNameLength     = 255
	MinPasswordLength = 8
)

type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && len(trimmed) <= MaxNameLength
}

func ValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	parsed, err := mail.ParseAddress(trimmed)
	return err == nil && parsed.Address == trimmed
}

func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// NormalizeEmail lowercases for the uniqueness check; two spellings of one
// mailbox are one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
