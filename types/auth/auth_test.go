package auth

import (
	"testing"

	"stagelink/models/user"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Name:     "Luna Vega",
		Email:    "luna@example.com",
		Password: "long-enough-password",
		Role:     user.RoleArtist,
	}
	assert.NoError(t, valid.Validate())

	noRole := valid
	noRole.Role = ""
	assert.NoError(t, noRole.Validate())

	noEmail := valid
	noEmail.Email = "   "
	assert.Error(t, noEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, shortPassword.Validate())

	unknownRole := valid
	unknownRole.Role = "promoter"
	assert.Error(t, unknownRole.Validate())

	adminRole := valid
	adminRole.Role = user.RoleAdmin
	assert.Error(t, adminRole.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "a@example.com", Password: "secret"}.Validate())
	assert.Error(t, LoginRequest{Password: "secret"}.Validate())
	assert.Error(t, LoginRequest{Email: "a@example.com"}.Validate())
}
