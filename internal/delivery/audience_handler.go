package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

// AudienceHandler serves audience segments and personas.
type AudienceHandler struct {
	audience *domain.AudienceService
	log      *logger.ZapLogger
}

func NewAudienceHandler(audience *domain.AudienceService, log *logger.ZapLogger) *AudienceHandler {
	return &AudienceHandler{audience: audience, log: log}
}

// POST /api/segments
func (h *AudienceHandler) CreateSegment(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	var req models.AudienceSegment
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	seg, err := h.audience.CreateSegment(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, seg)
}

// GET /api/segments
func (h *AudienceHandler) ListSegments(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	segs, err := h.audience.ListSegments(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, segs)
}

// GET /api/segments/{id}
func (h *AudienceHandler) GetSegment(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	seg, err := h.audience.GetSegment(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, seg)
}

// PUT /api/segments/{id}
func (h *AudienceHandler) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req models.AudienceSegment
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	seg, err := h.audience.UpdateSegment(r.Context(), user.ID, id, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, seg)
}

// DELETE /api/segments/{id}
func (h *AudienceHandler) DeleteSegment(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.audience.DeleteSegment(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/personas
func (h *AudienceHandler) CreatePersona(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	var req models.Persona
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.audience.CreatePersona(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GET /api/personas
func (h *AudienceHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	personas, err := h.audience.ListPersonas(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, personas)
}

// GET /api/personas/{id}
func (h *AudienceHandler) GetPersona(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.audience.GetPersona(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT /api/personas/{id}
func (h *AudienceHandler) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req models.Persona
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.audience.UpdatePersona(r.Context(), user.ID, id, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DELETE /api/personas/{id}
func (h *AudienceHandler) DeletePersona(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.audience.DeletePersona(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
