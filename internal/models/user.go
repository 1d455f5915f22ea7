package models

import (
	"gorm.io/gorm"
)

// User represents a registered account together with its profile fields
// and accumulated gameplay stats.
type User struct {
	gorm.Model
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"unique;not null" json:"email"`
	PasswordHash  string `gorm:"not null" json:"-"`
	FavoriteGenre string `json:"favoriteGenre"`
	HoursPlayed   int    `gorm:"default:0" json:"hoursPlayed"`
	Wins          int    `gorm:"default:0" json:"wins"`
	Losses        int    `gorm:"default:0" json:"losses"`
	Level         int    `gorm:"default:1" json:"level"`
	Photo         string `json:"photo"`
	Bio           string `gorm:"type:text" json:"bio"`

	Games    []Game          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Wishlist []WishlistEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
