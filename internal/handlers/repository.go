package handlers

import (
	"io"

	"gameshelf/internal/models"
)

// UserRepository captures the persistence operations required by handlers.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	UpdateProfile(userID uint, updates map[string]any) error
}

// GameRepository captures the collection persistence operations.
type GameRepository interface {
	Create(game *models.Game) error
	ListByUser(userID uint) ([]models.Game, error)
	DeleteOwned(userID, gameID uint) (int64, error)
	Totals(userID uint) (int64, int64, error)
}

// WishlistRepository captures the wishlist persistence operations.
type WishlistRepository interface {
	Create(entry *models.WishlistEntry) error
	ListByUser(userID uint) ([]models.WishlistEntry, error)
	DeleteOwned(userID, entryID uint) (int64, error)
}

// PhotoStore is the upload collaborator: it stores a photo stream and
// returns the reference string the profile keeps.
type PhotoStore interface {
	Save(src io.Reader, originalName string) (string, error)
}
