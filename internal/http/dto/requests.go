package dto

type SignupRequest struct {
	WalletAddress string `json:"walletAddress"`
	AuthMethod    string `json:"authMethod"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

// ConnectRequest is the idempotent find-or-create fired on every page load
// while a wallet is connected.
type ConnectRequest struct {
	WalletAddress string `json:"walletAddress"`
	AuthMethod    string `json:"authMethod,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
}

type LoginRequest struct {
	WalletAddress string `json:"walletAddress"`
	AuthMethod    string `json:"authMethod,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

type UpdateNameRequest struct {
	DisplayName string `json:"displayName"`
}

// UpdateProfileRequest uses pointers so "field absent" and "field present
// but empty" stay distinguishable: absent fields are untouched, empty ones
// are cleared.
type UpdateProfileRequest struct {
	Email        *string `json:"email,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}
