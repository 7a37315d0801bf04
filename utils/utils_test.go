package utils

import (
	"testing"

	userModel "stagelink/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	name := "Luna Vega"
	u := &userModel.User{
		ID:    42,
		Name:  &name,
		Email: "luna@example.com",
		Role:  userModel.RoleArtist,
	}

	token, err := GenerateSessionToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)

	assert.Equal(t, "luna@example.com", claims["email"])
	assert.Equal(t, userModel.RoleArtist, claims["role"])

	uid, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "first-secret")

	u := &userModel.User{ID: 1, Email: "a@example.com", Role: userModel.RoleFan}
	token, err := GenerateSessionToken(u)
	require.NoError(t, err)

	t.Setenv("AUTH_SECRET", "second-secret")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	u := &userModel.User{ID: 1, Email: "a@example.com", Role: userModel.RoleFan}
	_, err := GenerateSessionToken(u)
	assert.Error(t, err)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	_, err := ParseSessionToken("not.a.token")
	assert.Error(t, err)
}
