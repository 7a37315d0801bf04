package artist

import (
	"stagelink/models/user"
	"time"
)

// Artist represents an artist profile owned by a user account
type Artist struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	StageName   string          `gorm:"type:varchar(100);not null" json:"stage_name"`
	Bio         *string         `gorm:"type:text" json:"bio,omitempty"`
	Genres      user.StringList `gorm:"type:json" json:"genres,omitempty"`
	SocialLinks user.StringMap  `gorm:"type:json" json:"social_links,omitempty"`
	Verified    bool            `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
