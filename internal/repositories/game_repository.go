package repositories

import (
	"gameshelf/internal/models"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func (r *GameRepository) Create(game *models.Game) error {
	return r.DB.Create(game).Error
}

// ListByUser returns the user's owned games, newest first.
func (r *GameRepository) ListByUser(userID uint) ([]models.Game, error) {
	games := []models.Game{}
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&games).Error
	return games, err
}

// DeleteOwned removes a game only when it belongs to userID and reports how
// many rows went away. Zero is not an error: the id may not exist or may
// belong to someone else, and callers must not be able to tell which.
func (r *GameRepository) DeleteOwned(userID, gameID uint) (int64, error) {
	tx := r.DB.Where("id = ? AND user_id = ?", gameID, userID).Delete(&models.Game{})
	return tx.RowsAffected, tx.Error
}

// Totals returns the owned-game count and the summed hours for a user.
func (r *GameRepository) Totals(userID uint) (int64, int64, error) {
	var count int64
	if err := r.DB.Model(&models.Game{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var hours int64
	err := r.DB.Model(&models.Game{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&hours).Error
	return count, hours, err
}
