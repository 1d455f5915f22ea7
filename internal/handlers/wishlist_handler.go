package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gameshelf/internal/middleware"
	"gameshelf/internal/models"
	"gameshelf/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WishlistHandler manages a user's wishlist entries.
type WishlistHandler struct {
	Wishlist WishlistRepository
	Logger   *zap.Logger
}

type addWishRequest struct {
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	ExpectedRelease string `json:"expected_release"`
}

func (h *WishlistHandler) AddEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req addWishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	entry := &models.WishlistEntry{
		UserID:          userID,
		Title:           utils.TitleOrDefault(req.Title),
		Genre:           req.Genre,
		ExpectedRelease: req.ExpectedRelease,
	}
	if err := h.Wishlist.Create(entry); err != nil {
		h.Logger.Error("failed to add wishlist entry", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to add wishlist entry")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{"ok": true, "id": entry.ID})
}

func (h *WishlistHandler) ListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.Wishlist.ListByUser(userID)
	if err != nil {
		h.Logger.Error("failed to list wishlist", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to list wishlist")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"ok": true, "wishlist": entries})
}

func (h *WishlistHandler) RemoveEntryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.Wishlist.DeleteOwned(userID, uint(entryID))
	if err != nil {
		h.Logger.Error("failed to remove wishlist entry", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to remove wishlist entry")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
