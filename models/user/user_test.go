package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"indie pop", "dream pop"}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)
}

func TestStringListNilValue(t *testing.T) {
	var list StringList
	value, err := list.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var decoded StringList
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestStringListScanRejectsNonBytes(t *testing.T) {
	var decoded StringList
	assert.Error(t, decoded.Scan(12345))
}

func TestStringMapRoundTrip(t *testing.T) {
	links := StringMap{"instagram": "https://instagram.com/lunavega"}

	value, err := links.Value()
	require.NoError(t, err)

	var decoded StringMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, links, decoded)
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleFan, RoleArtist, RoleVenue, RoleAdmin} {
		assert.True(t, IsValidRole(role))
	}
	assert.False(t, IsValidRole("promoter"))
	assert.False(t, IsValidRole(""))
}
