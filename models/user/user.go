package user

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// User roles
const (
	RoleFan    = "fan"
	RoleArtist = "artist"
	RoleVenue  = "venue"
	RoleAdmin  = "admin"
)

// User represents a marketplace account. A user owns at most one artist
// profile and at most one venue profile, selected by Role.
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         *string `gorm:"type:varchar(100)" json:"name,omitempty"`
	Email        string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string  `gorm:"type:text;not null" json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:fan" json:"role"`

	FanPreferences StringList `gorm:"type:json" json:"fan_preferences,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// IsValidRole reports whether role is one of the known account roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleFan, RoleArtist, RoleVenue, RoleAdmin:
		return true
	default:
		return false
	}
}

// StringList is a custom type to store a slice of strings as a JSON column.
type StringList []string

// Scan implements the Scanner interface for database deserialization
func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, sl)
}

// Value implements the driver Valuer interface for database serialization
func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return nil, nil
	}
	return json.Marshal(sl)
}

// StringMap stores a string-keyed map (social links, amenities) as a JSON column.
type StringMap map[string]string

// Scan implements the Scanner interface for database deserialization
func (sm *StringMap) Scan(value interface{}) error {
	if value == nil {
		*sm = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, sm)
}

// Value implements the driver Valuer interface for database serialization
func (sm StringMap) Value() (driver.Value, error) {
	if sm == nil {
		return nil, nil
	}
	return json.Marshal(sm)
}
