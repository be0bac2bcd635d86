package models

import "testing"

func TestCanonicalAuthMethod(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		ok       bool
	}{
		{"metamask", AuthMethodMetamask, true},
		{"MetaMask", AuthMethodMetamask, true},
		{"INAPP", AuthMethodInApp, true},
		{"inApp", AuthMethodInApp, true},
		{"coinbase-wallet", AuthMethodCoinbaseWallet, true},
		{"X", AuthMethodX, true},
		{"myspace", "", false},
		{"", "", false},
		{"wallet connect", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalAuthMethod(tt.in)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("CanonicalAuthMethod(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestAuthMethodsCoverEveryConstant(t *testing.T) {
	constants := []string{
		AuthMethodMetamask, AuthMethodCoinbaseWallet, AuthMethodWalletConnect,
		AuthMethodInApp, AuthMethodEmail, AuthMethodPhone, AuthMethodGoogle,
		AuthMethodGithub, AuthMethodMicrosoft, AuthMethodDiscord, AuthMethodX,
		AuthMethodPasskey, AuthMethodGuest, AuthMethodWallet,
	}

	if len(AuthMethods) != len(constants) {
		t.Errorf("AuthMethods has %d entries, want %d", len(AuthMethods), len(constants))
	}
	for _, m := range constants {
		if _, ok := CanonicalAuthMethod(m); !ok {
			t.Errorf("constant %q missing from AuthMethods", m)
		}
	}
}
