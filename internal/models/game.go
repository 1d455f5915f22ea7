package models

import (
	"gorm.io/gorm"
)

// Game is an entry in a user's owned collection.
type Game struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"userId"`
	Title  string `gorm:"not null" json:"title"`
	Genre  string `json:"genre"`
	Hours  int    `gorm:"default:0" json:"hours"`
	Owned  bool   `gorm:"default:true" json:"owned"`
	ImgURL string `json:"imgUrl"`
}
