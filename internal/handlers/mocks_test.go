package handlers

import (
	"io"

	"gameshelf/internal/models"
)

type mockUserRepo struct {
	createUserFn     func(*models.User) error
	getUserByEmailFn func(string) (*models.User, error)
	getUserByIDFn    func(uint) (*models.User, error)
	updateProfileFn  func(uint, map[string]any) error
}

func (m *mockUserRepo) CreateUser(user *models.User) error {
	if m.createUserFn == nil {
		return nil
	}
	return m.createUserFn(user)
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn == nil {
		panic("unexpected call to GetUserByEmail")
	}
	return m.getUserByEmailFn(email)
}

func (m *mockUserRepo) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn == nil {
		panic("unexpected call to GetUserByID")
	}
	return m.getUserByIDFn(id)
}

func (m *mockUserRepo) UpdateProfile(id uint, updates map[string]any) error {
	if m.updateProfileFn == nil {
		panic("unexpected call to UpdateProfile")
	}
	return m.updateProfileFn(id, updates)
}

type mockGameRepo struct {
	createFn      func(*models.Game) error
	listByUserFn  func(uint) ([]models.Game, error)
	deleteOwnedFn func(uint, uint) (int64, error)
	totalsFn      func(uint) (int64, int64, error)
}

func (m *mockGameRepo) Create(game *models.Game) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(game)
}

func (m *mockGameRepo) ListByUser(userID uint) ([]models.Game, error) {
	if m.listByUserFn == nil {
		panic("unexpected call to ListByUser")
	}
	return m.listByUserFn(userID)
}

func (m *mockGameRepo) DeleteOwned(userID, gameID uint) (int64, error) {
	if m.deleteOwnedFn == nil {
		panic("unexpected call to DeleteOwned")
	}
	return m.deleteOwnedFn(userID, gameID)
}

func (m *mockGameRepo) Totals(userID uint) (int64, int64, error) {
	if m.totalsFn == nil {
		panic("unexpected call to Totals")
	}
	return m.totalsFn(userID)
}

type mockWishlistRepo struct {
	createFn      func(*models.WishlistEntry) error
	listByUserFn  func(uint) ([]models.WishlistEntry, error)
	deleteOwnedFn func(uint, uint) (int64, error)
}

func (m *mockWishlistRepo) Create(entry *models.WishlistEntry) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(entry)
}

func (m *mockWishlistRepo) ListByUser(userID uint) ([]models.WishlistEntry, error) {
	if m.listByUserFn == nil {
		panic("unexpected call to ListByUser")
	}
	return m.listByUserFn(userID)
}

func (m *mockWishlistRepo) DeleteOwned(userID, entryID uint) (int64, error) {
	if m.deleteOwnedFn == nil {
		panic("unexpected call to DeleteOwned")
	}
	return m.deleteOwnedFn(userID, entryID)
}

type mockPhotoStore struct {
	saveFn func(io.Reader, string) (string, error)
}

func (m *mockPhotoStore) Save(src io.Reader, originalName string) (string, error) {
	if m.saveFn == nil {
		panic("unexpected call to Save")
	}
	return m.saveFn(src, originalName)
}
