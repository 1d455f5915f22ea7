package models

import (
	"gorm.io/gorm"
)

// WishlistEntry is a game a user wants but does not own yet.
type WishlistEntry struct {
	gorm.Model
	UserID          uint   `gorm:"not null;index" json:"userId"`
	Title           string `gorm:"not null" json:"title"`
	Genre           string `json:"genre"`
	ExpectedRelease string `json:"expectedRelease"`
}
