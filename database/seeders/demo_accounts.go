package seeders

import (
	"log"

	"stagelink/models/artist"
	"stagelink/models/user"
	"stagelink/models/venue"
	"stagelink/utils"

	"gorm.io/gorm"
)

type demoAccount struct {
	name   string
	email  string
	role   string
	artist *artist.Artist
	venue  *venue.Venue
}

func strPtr(s string) *string { return &s }

func demoAccounts() []demoAccount {
	return []demoAccount{
		{
			name: "Luna Vega", email: "luna@demo.stagelink.app", role: user.RoleArtist,
			artist: &artist.Artist{
				StageName: "Luna Vega",
				Bio:       strPtr("Indie pop singer-songwriter with a loop pedal and a lot of reverb."),
				Genres:    user.StringList{"indie pop", "dream pop"},
				SocialLinks: user.StringMap{
					"instagram": "https://instagram.com/lunavega",
				},
			},
		},
		{
			name: "The Midnight Drifters", email: "drifters@demo.stagelink.app", role: user.RoleArtist,
			artist: &artist.Artist{
				StageName: "The Midnight Drifters",
				Bio:       strPtr("Four-piece blues rock band, twenty years on the road."),
				Genres:    user.StringList{"blues", "rock"},
			},
		},
		{
			name: "DJ Pulse", email: "pulse@demo.stagelink.app", role: user.RoleArtist,
			artist: &artist.Artist{
				StageName: "DJ Pulse",
				Genres:    user.StringList{"house", "techno"},
			},
		},
		{
			name: "Maria Santos", email: "maria@demo.stagelink.app", role: user.RoleVenue,
			venue: &venue.Venue{
				Name:        "The Blue Note",
				Description: strPtr("Intimate jazz and blues club, live music five nights a week."),
				Address:     "142 Bleeker St",
				City:        "Portland",
				State:       strPtr("OR"),
				Country:     "USA",
				Capacity:    180,
				Amenities:   user.StringList{"full PA", "stage lighting", "green room"},
			},
		},
		{
			name: "Tom Avery", email: "tom@demo.stagelink.app", role: user.RoleVenue,
			venue: &venue.Venue{
				Name:        "Warehouse 9",
				Description: strPtr("Converted warehouse space for club nights and large shows."),
				Address:     "9 Dockside Ave",
				City:        "Portland",
				State:       strPtr("OR"),
				Country:     "USA",
				Capacity:    850,
				Amenities:   user.StringList{"full PA", "bar", "parking"},
			},
		},
		{
			name: "Fiona Lee", email: "fiona@demo.stagelink.app", role: user.RoleFan,
		},
	}
}

// SeedDemoAccounts inserts a set of demo artists and venues for local
// development. Accounts are keyed by email, so re-running is safe.
func SeedDemoAccounts(db *gorm.DB) {
	log.Printf("🔍 Checking demo account data integrity...")

	successCount := 0
	skippedCount := 0

	for _, account := range demoAccounts() {
		var existing user.User
		err := db.Where("email = ?", account.email).First(&existing).Error
		if err == nil {
			skippedCount++
			continue
		}

		hash, err := utils.HashPassword("demo-password")
		if err != nil {
			log.Printf("❌ Failed to hash demo password for %s: %v", account.email, err)
			continue
		}

		name := account.name
		u := user.User{
			Name:         &name,
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Failed to seed account %s: %v", account.email, err)
			continue
		}

		if account.artist != nil {
			account.artist.UserID = u.ID
			if err := db.Create(account.artist).Error; err != nil {
				log.Printf("❌ Failed to seed artist profile for %s: %v", account.email, err)
				continue
			}
		}
		if account.venue != nil {
			account.venue.UserID = u.ID
			if err := db.Create(account.venue).Error; err != nil {
				log.Printf("❌ Failed to seed venue profile for %s: %v", account.email, err)
				continue
			}
		}

		log.Printf("✅ Added: %s (%s)", account.name, account.role)
		successCount++
	}

	log.Printf("🎉 Demo seeding completed! Inserted %d accounts, %d already present", successCount, skippedCount)
}
