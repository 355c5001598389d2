package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

// ShareHandler serves the collaborator sub-resource. Routes are registered
// once per content kind; the kind is fixed by the closure.
type ShareHandler struct {
	shares *domain.ShareService
	log    *logger.ZapLogger
}

func NewShareHandler(shares *domain.ShareService, log *logger.ZapLogger) *ShareHandler {
	return &ShareHandler{shares: shares, log: log}
}

// POST /api/<kind>s/{id}/collaborators
func (h *ShareHandler) Add(kind models.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, h.log, err)
			return
		}

		var req struct {
			Email string                  `json:"email"`
			Role  models.CollaboratorRole `json:"role"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}

		c, err := h.shares.Add(r.Context(), user.ID, kind, id, req.Email, req.Role)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// GET /api/<kind>s/{id}/collaborators
func (h *ShareHandler) List(kind models.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		list, err := h.shares.List(r.Context(), user.ID, kind, id)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// DELETE /api/<kind>s/{id}/collaborators/{userID}
func (h *ShareHandler) Remove(kind models.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		target, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil || target <= 0 {
			writeError(w, h.log, apperr.Invalid("invalid user id"))
			return
		}
		if err := h.shares.Remove(r.Context(), user.ID, kind, id, target); err != nil {
			writeError(w, h.log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
