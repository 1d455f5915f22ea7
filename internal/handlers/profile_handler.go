package handlers

import (
	"errors"
	"net/http"

	"gameshelf/internal/middleware"
	"gameshelf/internal/repositories"
	"gameshelf/internal/utils"

	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

// ProfileHandler reads and updates the authenticated user's profile.
type ProfileHandler struct {
	Users  UserRepository
	Photos PhotoStore
	Logger *zap.Logger
}

func (h *ProfileHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("failed to load profile", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"profile": map[string]any{
			"name":          user.Name,
			"email":         user.Email,
			"favoriteGenre": user.FavoriteGenre,
			"hoursPlayed":   user.HoursPlayed,
			"wins":          user.Wins,
			"losses":        user.Losses,
			"level":         user.Level,
			"photo":         user.Photo,
			"bio":           user.Bio,
		},
	})
}

// UpdateProfileHandler merge-updates the supplied multipart fields. Fields
// not present in the form keep their stored values; in particular an absent
// photo file leaves the existing photo reference alone.
func (h *ProfileHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	updates := map[string]any{}
	for form, column := range map[string]string{
		"name":           "name",
		"email":          "email",
		"bio":            "bio",
		"favorite_genre": "favorite_genre",
	} {
		if vals, present := r.MultipartForm.Value[form]; present && len(vals) > 0 {
			updates[column] = vals[0]
		}
	}

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		ref, saveErr := h.Photos.Save(file, header.Filename)
		if saveErr != nil {
			h.Logger.Error("failed to store photo", zap.Error(saveErr))
			utils.JSONError(w, http.StatusInternalServerError, "failed to store photo")
			return
		}
		updates["photo"] = ref
	} else if !errors.Is(err, http.ErrMissingFile) {
		utils.JSONError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}

	if err := h.Users.UpdateProfile(userID, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			utils.JSONError(w, http.StatusConflict, "email already registered")
		case errors.Is(err, repositories.ErrUserNotFound):
			utils.JSONError(w, http.StatusNotFound, "user not found")
		default:
			h.Logger.Error("failed to update profile", zap.Error(err))
			utils.JSONError(w, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"ok": true})
}
