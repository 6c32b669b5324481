package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"simgaji/internal/domain/auth"
	"simgaji/internal/transport/http/api"
	"simgaji/internal/transport/http/middleware"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
	r.With(middleware.RequireUser).Get("/auth/me", h.handleMe)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}
	if payload.Username == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "username and password are required", requestID)
		return
	}

	token, profile, err := h.Service.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
			return
		}
		log.Error().Err(err).Str("requestId", requestID).Msg("login failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist session", requestID)
		return
	}

	api.Success(w, map[string]any{"token": token, "user": profile}, requestID)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if err := h.Service.Logout(); err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("logout failed")
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to clear session", requestID)
		return
	}
	api.Success(w, map[string]any{"loggedOut": true}, requestID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	api.Success(w, user, middleware.GetRequestID(r.Context()))
}
