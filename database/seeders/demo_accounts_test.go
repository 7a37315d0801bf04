package seeders

import (
	"testing"

	"stagelink/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoAccountsAreWellFormed(t *testing.T) {
	accounts := demoAccounts()
	require.NotEmpty(t, accounts)

	seenEmails := make(map[string]bool)
	for _, account := range accounts {
		assert.NotEmpty(t, account.name)
		assert.True(t, user.IsValidRole(account.role), "unknown role %q for %s", account.role, account.email)

		assert.False(t, seenEmails[account.email], "duplicate email %s", account.email)
		seenEmails[account.email] = true

		switch account.role {
		case user.RoleArtist:
			require.NotNil(t, account.artist, "artist account %s needs a profile", account.email)
			assert.Nil(t, account.venue)
			assert.NotEmpty(t, account.artist.StageName)
		case user.RoleVenue:
			require.NotNil(t, account.venue, "venue account %s needs a profile", account.email)
			assert.Nil(t, account.artist)
			assert.NotEmpty(t, account.venue.Name)
			assert.NotEmpty(t, account.venue.Address)
			assert.NotEmpty(t, account.venue.City)
			assert.NotEmpty(t, account.venue.Country)
			assert.Greater(t, account.venue.Capacity, 0)
			if account.venue.State != nil {
				assert.NotEmpty(t, *account.venue.State)
			}
		default:
			assert.Nil(t, account.artist)
			assert.Nil(t, account.venue)
		}
	}
}
