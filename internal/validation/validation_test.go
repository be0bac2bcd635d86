package validation

import (
	"strings"
	"testing"
)

func TestIsValidEthereumAddress(t *testing.T) {
	tests := []struct {
		addr     string
		expected bool
	}{
		{"0xabcdef0123456789abcdef0123456789abcdef01", true},
		{"0xABCDEF0123456789ABCDEF0123456789ABCDEF01", true},
		{"0xAbCdEf0123456789aBcDeF0123456789AbCdEf01", true},
		{"0x123", false},
		{"abcdef0123456789abcdef0123456789abcdef01", false},
		{"0xabcdef0123456789abcdef0123456789abcdef0", false},   // 39 digits
		{"0xabcdef0123456789abcdef0123456789abcdef012", false}, // 41 digits
		{"0xabcdef0123456789abcdef0123456789abcdefg1", false},  // non-hex
		{"", false},
		{"0x", false},
		{" 0xabcdef0123456789abcdef0123456789abcdef01", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := IsValidEthereumAddress(tt.addr); got != tt.expected {
				t.Errorf("IsValidEthereumAddress(%q) = %v, want %v", tt.addr, got, tt.expected)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.io", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false}, // no tld
		{"user name@example.com", false},
		{"", false},
		{strings.Repeat("a", 250) + "@x.io", false}, // over 254
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.expected {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.expected)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone    string
		expected bool
	}{
		{"+14155550123", true},
		{"14155550123", true},
		{"+442071838750", true},
		{"abc", false},
		{"+0123456", false},            // leading zero
		{"+1", false},                  // too short
		{"+123456789012345678", false}, // over 15 digits
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPhoneNumber(tt.phone); got != tt.expected {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", tt.phone, got, tt.expected)
		}
	}
}

func TestIsValidAuthMethod(t *testing.T) {
	valid := []string{
		"metamask", "coinbase-wallet", "walletconnect", "inApp", "email",
		"phone", "google", "github", "microsoft", "discord", "x", "passkey",
		"guest", "wallet",
		// case-insensitive
		"MetaMask", "GOOGLE", "INAPP",
	}
	for _, m := range valid {
		if !IsValidAuthMethod(m) {
			t.Errorf("IsValidAuthMethod(%q) = false, want true", m)
		}
	}

	invalid := []string{"myspace", "", "meta mask", "wallet-connect"}
	for _, m := range invalid {
		if IsValidAuthMethod(m) {
			t.Errorf("IsValidAuthMethod(%q) = true, want false", m)
		}
	}
}

func TestIsValidPositiveInteger(t *testing.T) {
	tests := []struct {
		s        string
		max      int
		expected bool
	}{
		{"1", 100, true},
		{"100", 100, true},
		{"101", 100, false},
		{"0", 100, false},
		{"-5", 100, false},
		{"12abc", 100, false},
		{"1.5", 100, false},
		{"", 100, false},
		{"99999", 3650, false},
		{"3650", 3650, true},
		{" 5", 100, false},
	}

	for _, tt := range tests {
		if got := IsValidPositiveInteger(tt.s, tt.max); got != tt.expected {
			t.Errorf("IsValidPositiveInteger(%q, %d) = %v, want %v", tt.s, tt.max, got, tt.expected)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in       string
		maxLen   int
		expected string
	}{
		{"  hello  ", 100, "hello"},
		{"hello world", 5, "hello"},
		{"   ", 100, ""},
		{"", 100, ""},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.in, tt.maxLen); got != tt.expected {
			t.Errorf("SanitizeString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.expected)
		}
	}
}

func TestSanitizeStringIdempotent(t *testing.T) {
	inputs := []string{"  padded  ", "plain", strings.Repeat("x", 500), "  trailing space after cut   ", ""}
	for _, s := range inputs {
		for _, n := range []int{0, 3, 10, 254} {
			once := SanitizeString(s, n)
			twice := SanitizeString(once, n)
			if once != twice {
				t.Errorf("SanitizeString not idempotent for (%q, %d): %q != %q", s, n, once, twice)
			}
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress("0xABCDEF0123456789ABCDEF0123456789ABCDEF01")
	want := "0xabcdef0123456789abcdef0123456789abcdef01"
	if got != want {
		t.Errorf("NormalizeAddress = %q, want %q", got, want)
	}
}
