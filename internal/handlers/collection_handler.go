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

// CollectionHandler manages a user's owned games.
type CollectionHandler struct {
	Games  GameRepository
	Logger *zap.Logger
}

type addGameRequest struct {
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Hours  any    `json:"hours"`
	ImgURL string `json:"img_url"`
}

func (h *CollectionHandler) AddGameHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req addGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	game := &models.Game{
		UserID: userID,
		Title:  utils.TitleOrDefault(req.Title),
		Genre:  req.Genre,
		Hours:  utils.CoerceHours(req.Hours),
		Owned:  true,
		ImgURL: req.ImgURL,
	}
	if err := h.Games.Create(game); err != nil {
		h.Logger.Error("failed to add game", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to add game")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{"ok": true, "id": game.ID})
}

func (h *CollectionHandler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	games, err := h.Games.ListByUser(userID)
	if err != nil {
		h.Logger.Error("failed to list games", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to list games")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"ok": true, "games": games})
}

// RemoveGameHandler deletes a game only when the caller owns it. A miss
// reports deleted:0 rather than an error so callers learn nothing about
// other users' rows.
func (h *CollectionHandler) RemoveGameHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gameID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.Games.DeleteOwned(userID, uint(gameID))
	if err != nil {
		h.Logger.Error("failed to remove game", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to remove game")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
