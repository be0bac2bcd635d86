// Package validation holds the input checks shared by every mutating or
// parameterized endpoint. All functions are pure; nothing here touches the
// database.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fund-portal/backend/internal/models"
)

const maxEmailLength = 254

var (
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`) // E.164
)

// IsValidEthereumAddress reports whether s is a 0x-prefixed 40-hex-digit
// address. Casing is not significant; normalization happens at the
// repository boundary.
func IsValidEthereumAddress(s string) bool {
	return addressRe.MatchString(s)
}

func IsValidEmail(s string) bool {
	return len(s) <= maxEmailLength && emailRe.MatchString(s)
}

func IsValidPhoneNumber(s string) bool {
	return phoneRe.MatchString(s)
}

func IsValidAuthMethod(s string) bool {
	_, ok := models.CanonicalAuthMethod(s)
	return ok
}

// IsValidPositiveInteger reports whether s parses in full to an integer in
// (0, max]. Residual characters ("12abc"), floats and negatives are rejected.
func IsValidPositiveInteger(s string, max int) bool {
	v, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return v > 0 && v <= max
}

// SanitizeString trims surrounding whitespace and truncates to maxLen bytes.
// Idempotent: sanitizing an already-sanitized string is a no-op.
func SanitizeString(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		s = strings.TrimSpace(s[:maxLen])
	}
	return s
}

// NormalizeAddress lowercases a wallet address. Callers must validate first.
func NormalizeAddress(s string) string {
	return strings.ToLower(s)
}
