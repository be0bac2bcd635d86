package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestBuildLoginSetAlwaysBumpsBookkeeping(t *testing.T) {
	set, args := buildLoginSet(LoginUpdate{})

	assert.Equal(t, []string{
		"login_count = login_count + 1",
		"last_login_at = now()",
		"updated_at = now()",
	}, set)
	assert.Empty(t, args)
}

func TestBuildLoginSetSkipsEmptyAndNilFields(t *testing.T) {
	set, args := buildLoginSet(LoginUpdate{
		AuthMethod:  strptr("google"),
		Email:       strptr(""), // empty: never overwrites
		DisplayName: strptr("Alice"),
	})

	joined := strings.Join(set, ", ")
	assert.Contains(t, joined, "auth_method = $1")
	assert.Contains(t, joined, "display_name = $2")
	assert.NotContains(t, joined, "email")
	assert.NotContains(t, joined, "phone_number")
	assert.NotContains(t, joined, "profile_image")
	assert.Equal(t, []any{"google", "Alice"}, args)
}

func TestBuildLoginSetPlaceholdersAreSequential(t *testing.T) {
	set, args := buildLoginSet(LoginUpdate{
		AuthMethod:   strptr("metamask"),
		Email:        strptr("a@b.io"),
		PhoneNumber:  strptr("+14155550123"),
		DisplayName:  strptr("Bob"),
		ProfileImage: strptr("https://img.example/x.png"),
	})

	joined := strings.Join(set, ", ")
	for _, frag := range []string{"auth_method = $1", "email = $2", "phone_number = $3", "display_name = $4", "profile_image = $5"} {
		assert.Contains(t, joined, frag)
	}
	assert.Len(t, args, 5)
}

func TestBuildProfileSetClearsEmptyFieldsToNull(t *testing.T) {
	set, args := buildProfileSet(ProfileUpdate{
		Email:        strptr(""),
		ProfileImage: strptr("https://img.example/y.png"),
	})

	joined := strings.Join(set, ", ")
	assert.Contains(t, joined, "updated_at = now()")
	assert.Contains(t, joined, "email = $1")
	assert.Contains(t, joined, "profile_image = $2")
	assert.NotContains(t, joined, "display_name")

	// explicit clear becomes NULL, not empty string
	assert.Equal(t, []any{nil, "https://img.example/y.png"}, args)
}

func TestBuildProfileSetLeavesAbsentFieldsUntouched(t *testing.T) {
	set, args := buildProfileSet(ProfileUpdate{DisplayName: strptr("Carol")})

	joined := strings.Join(set, ", ")
	assert.NotContains(t, joined, "email")
	assert.NotContains(t, joined, "profile_image")
	assert.Contains(t, joined, "display_name = $1")
	assert.Equal(t, []any{"Carol"}, args)
}

func TestBuildProfileSetEmptyDisplayNameFallsBackToDefault(t *testing.T) {
	_, args := buildProfileSet(ProfileUpdate{DisplayName: strptr("")})
	assert.Equal(t, []any{"Web3 User"}, args)
}

func TestProfileUpdateEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.Empty())
	assert.False(t, ProfileUpdate{Email: strptr("a@b.io")}.Empty())
}
