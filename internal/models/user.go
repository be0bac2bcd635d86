package models

import (
	"strings"
	"time"
)

// Auth methods recorded on login. The stored value reflects the most recent
// channel the user signed in with.
const (
	AuthMethodMetamask       = "metamask"
	AuthMethodCoinbaseWallet = "coinbase-wallet"
	AuthMethodWalletConnect  = "walletconnect"
	AuthMethodInApp          = "inApp"
	AuthMethodEmail          = "email"
	AuthMethodPhone          = "phone"
	AuthMethodGoogle         = "google"
	AuthMethodGithub         = "github"
	AuthMethodMicrosoft      = "microsoft"
	AuthMethodDiscord        = "discord"
	AuthMethodX              = "x"
	AuthMethodPasskey        = "passkey"
	AuthMethodGuest          = "guest"
	AuthMethodWallet         = "wallet"
)

// DefaultDisplayName is assigned when a wallet connects without a name.
const DefaultDisplayName = "Web3 User"

// AuthMethods is the closed set of accepted auth_method values, keyed by
// lowercased form so membership checks are case-insensitive.
var AuthMethods = map[string]string{
	"metamask":        AuthMethodMetamask,
	"coinbase-wallet": AuthMethodCoinbaseWallet,
	"walletconnect":   AuthMethodWalletConnect,
	"inapp":           AuthMethodInApp,
	"email":           AuthMethodEmail,
	"phone":           AuthMethodPhone,
	"google":          AuthMethodGoogle,
	"github":          AuthMethodGithub,
	"microsoft":       AuthMethodMicrosoft,
	"discord":         AuthMethodDiscord,
	"x":               AuthMethodX,
	"passkey":         AuthMethodPasskey,
	"guest":           AuthMethodGuest,
	"wallet":          AuthMethodWallet,
}

// CanonicalAuthMethod maps any casing of a known auth method to its stored
// form. ok is false for unknown methods.
func CanonicalAuthMethod(s string) (string, bool) {
	v, ok := AuthMethods[strings.ToLower(s)]
	return v, ok
}

type User struct {
	WalletAddress string     `json:"wallet_address"`
	Email         *string    `json:"email,omitempty"`
	PhoneNumber   *string    `json:"phone_number,omitempty"`
	DisplayName   string     `json:"display_name"`
	AuthMethod    string     `json:"auth_method"`
	ProfileImage  *string    `json:"profile_image,omitempty"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	LoginCount    int        `json:"login_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// UserSummary is the admin-listing projection. Email and phone are
// deliberately omitted.
type UserSummary struct {
	WalletAddress string     `json:"wallet_address"`
	DisplayName   string     `json:"display_name"`
	AuthMethod    string     `json:"auth_method"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	LoginCount    int        `json:"login_count"`
	CreatedAt     time.Time  `json:"created_at"`
}
