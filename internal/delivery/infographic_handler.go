package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type InfographicHandler struct {
	infographics *domain.InfographicService
	blobs        ports.BlobStore
	log          *logger.ZapLogger
}

func NewInfographicHandler(infographics *domain.InfographicService, blobs ports.BlobStore, log *logger.ZapLogger) *InfographicHandler {
	return &InfographicHandler{infographics: infographics, blobs: blobs, log: log}
}

// POST /api/infographics
func (h *InfographicHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	var req struct {
		Title      string `json:"title"`
		DocumentID int    `json:"documentId"`
		BrandID    *int   `json:"brandId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	g, err := h.infographics.Create(r.Context(), user.ID, domain.InfographicInput{
		Title:      req.Title,
		DocumentID: req.DocumentID,
		BrandID:    req.BrandID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// GET /api/infographics
func (h *InfographicHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	list, err := h.infographics.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/infographics/{id}
func (h *InfographicHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	g, err := h.infographics.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// PUT /api/infographics/{id}
func (h *InfographicHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req struct {
		Title   *string `json:"title"`
		BrandID *int    `json:"brandId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	g, err := h.infographics.Update(r.Context(), user.ID, id, domain.InfographicUpdate{
		Title:   req.Title,
		BrandID: req.BrandID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// DELETE /api/infographics/{id}
func (h *InfographicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.infographics.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/infographics/{id}/generate
func (h *InfographicHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	job, err := h.infographics.Generate(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "infographic generation queued",
		Fields:  map[string]any{"infographicID": id, "jobID": job.ID},
	})
	writeJSON(w, http.StatusAccepted, job)
}

// GET /api/infographics/{id}/image
func (h *InfographicHandler) Image(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	g, err := h.infographics.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if g.ImagePath == nil {
		writeError(w, h.log, apperr.NotFound("infographic image"))
		return
	}
	data, err := h.blobs.Get(r.Context(), *g.ImagePath)
	if err != nil {
		writeError(w, h.log, apperr.NotFound("infographic image"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}
