package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type AuthHandler struct {
	auth         *domain.AuthService
	cookieSecure bool
	log          *logger.ZapLogger
}

func NewAuthHandler(auth *domain.AuthService, cookieSecure bool, log *logger.ZapLogger) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure, log: log}
}

type credentials struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	user, session, err := h.auth.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "user registered",
		Fields:  map[string]any{"userID": user.ID},
	})

	h.setSessionCookie(w, session)
	writeJSON(w, http.StatusCreated, map[string]any{"user": user, "session": session})
}

// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	user, session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "login success",
		Fields:  map[string]any{"userID": user.ID},
	})

	h.setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, map[string]any{"user": user, "session": session})
}

// POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), SessionToken(r)); err != nil {
		writeError(w, h.log, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user": CurrentUser(r.Context())})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
