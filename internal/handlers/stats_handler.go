package handlers

import (
	"errors"
	"math"
	"net/http"

	"gameshelf/internal/middleware"
	"gameshelf/internal/repositories"
	"gameshelf/internal/utils"

	"go.uber.org/zap"
)

// StatsHandler computes the derived profile metrics.
type StatsHandler struct {
	Users  UserRepository
	Games  GameRepository
	Logger *zap.Logger
}

func (h *StatsHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	totalGames, totalHours, err := h.Games.Totals(userID)
	if err != nil {
		h.Logger.Error("failed to aggregate games", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	user, err := h.Users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("failed to load user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	winRatio := 0
	if decided := user.Wins + user.Losses; decided > 0 {
		winRatio = int(math.Round(100 * float64(user.Wins) / float64(decided)))
	}

	// Level doubles as the progress percentage; the scale-up and divide
	// cancel, but anything past 100 stays pinned at the cap.
	levelProgress := int(math.Round(float64(user.Level) * 100 / 100))
	if levelProgress > 100 {
		levelProgress = 100
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"stats": map[string]any{
			"totalGames":    totalGames,
			"totalHours":    totalHours,
			"level":         user.Level,
			"levelProgress": levelProgress,
			"winRatio":      winRatio,
		},
	})
}
