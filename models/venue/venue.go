package venue

import (
	"stagelink/models/user"
	"time"
)

// Venue represents a venue profile owned by a user account
type Venue struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Address     string          `gorm:"type:text;not null" json:"address"`
	City        string          `gorm:"type:varchar(100);not null" json:"city"`
	State       *string         `gorm:"type:varchar(50)" json:"state,omitempty"`
	Country     string          `gorm:"type:varchar(50);not null" json:"country"`
	PostalCode  *string         `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Capacity    int             `gorm:"not null" json:"capacity"`
	Amenities   user.StringList `gorm:"type:json" json:"amenities,omitempty"`
	Photos      user.StringList `gorm:"type:json" json:"photos,omitempty"`

	ContactEmail *string `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone *string `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	Verified     bool    `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
