package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gameshelf/internal/middleware"
	"gameshelf/internal/models"
	"gameshelf/internal/repositories"
	"gameshelf/internal/sessions"
	"gameshelf/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler manages signup, login and logout.
type AuthHandler struct {
	Users        UserRepository
	Sessions     sessions.Store
	Logger       *zap.Logger
	CookieSecure bool
}

func NewAuthHandler(users UserRepository, store sessions.Store, logger *zap.Logger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: store, Logger: logger, CookieSecure: cookieSecure}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing fields")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("failed to hash password", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := &models.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash), Level: 1}
	if err := h.Users.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			utils.JSONError(w, http.StatusConflict, "email already registered")
			return
		}
		h.Logger.Error("failed to create user", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{"ok": true, "userId": user.ID})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing fields")
		return
	}

	user, err := h.Users.GetUserByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			h.Logger.Error("failed to look up user", zap.Error(err))
			utils.JSONError(w, http.StatusInternalServerError, "login failed")
			return
		}
		// Unknown email and wrong password must be indistinguishable.
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
	})
}

// LogoutHandler destroys the session binding if one exists. It always
// acknowledges success so repeated logouts are harmless.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.Logger.Warn("failed to destroy session", zap.Error(err))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	utils.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID uint) error {
	token, err := h.Sessions.Create(r.Context(), userID, sessions.DefaultTTL)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "failed to create session")
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessions.DefaultTTL),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
