package repositories

import (
	"gameshelf/internal/models"

	"gorm.io/gorm"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func (r *WishlistRepository) Create(entry *models.WishlistEntry) error {
	return r.DB.Create(entry).Error
}

// ListByUser returns the user's wishlist entries, newest first.
func (r *WishlistRepository) ListByUser(userID uint) ([]models.WishlistEntry, error) {
	entries := []models.WishlistEntry{}
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&entries).Error
	return entries, err
}

// DeleteOwned mirrors the collection semantics: rows a user does not own
// report zero deleted, never an error.
func (r *WishlistRepository) DeleteOwned(userID, entryID uint) (int64, error) {
	tx := r.DB.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.WishlistEntry{})
	return tx.RowsAffected, tx.Error
}
