package database

import (
	"fmt"
	"os"

	"stagelink/logger"
	"stagelink/models/activity"
	"stagelink/models/artist"
	"stagelink/models/booking"
	"stagelink/models/event"
	"stagelink/models/user"
	"stagelink/models/venue"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	dbUser := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, dbUser, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: accounts
	stage1Models := []interface{}{
		&user.User{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: profiles owned by users
	stage2Models := []interface{}{
		&artist.Artist{},
		&venue.Venue{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: negotiation and events
	stage3Models := []interface{}{
		&booking.BookingRequest{},
		&event.Event{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 4: logging
	remainingModels := []interface{}{
		&activity.ActivityLog{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// User indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)").Error; err != nil {
		return fmt.Errorf("failed to create user role index: %w", err)
	}

	// Profile indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_artists_user_id ON artists(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create artist user_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_venues_user_id ON venues(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create venue user_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_venues_city ON venues(city)").Error; err != nil {
		return fmt.Errorf("failed to create venue city index: %w", err)
	}

	// Booking request indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_booking_requests_artist_id ON booking_requests(artist_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking request artist_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_booking_requests_venue_id ON booking_requests(venue_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking request venue_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_booking_requests_status ON booking_requests(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking request status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_booking_requests_created_at ON booking_requests(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking request created_at index: %w", err)
	}

	// Event indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date)").Error; err != nil {
		return fmt.Errorf("failed to create event event_date index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_events_status ON events(status)").Error; err != nil {
		return fmt.Errorf("failed to create event status index: %w", err)
	}

	// Activity log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_user_id ON activity_logs(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create activity log user_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp ON activity_logs(timestamp)").Error; err != nil {
		return fmt.Errorf("failed to create activity log timestamp index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_artists_user",
			sql: `ALTER TABLE artists ADD CONSTRAINT fk_artists_user
				  FOREIGN KEY (user_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_venues_user",
			sql: `ALTER TABLE venues ADD CONSTRAINT fk_venues_user
				  FOREIGN KEY (user_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_booking_requests_artist",
			sql: `ALTER TABLE booking_requests ADD CONSTRAINT fk_booking_requests_artist
				  FOREIGN KEY (artist_id) REFERENCES artists(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_booking_requests_venue",
			sql: `ALTER TABLE booking_requests ADD CONSTRAINT fk_booking_requests_venue
				  FOREIGN KEY (venue_id) REFERENCES venues(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_booking_requests_event",
			sql: `ALTER TABLE booking_requests ADD CONSTRAINT fk_booking_requests_event
				  FOREIGN KEY (event_id) REFERENCES events(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_events_artist",
			sql: `ALTER TABLE events ADD CONSTRAINT fk_events_artist
				  FOREIGN KEY (artist_id) REFERENCES artists(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_events_venue",
			sql: `ALTER TABLE events ADD CONSTRAINT fk_events_venue
				  FOREIGN KEY (venue_id) REFERENCES venues(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
