package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type PodcastHandler struct {
	podcasts *domain.PodcastService
	blobs    ports.BlobStore
	log      *logger.ZapLogger
}

func NewPodcastHandler(podcasts *domain.PodcastService, blobs ports.BlobStore, log *logger.ZapLogger) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts, blobs: blobs, log: log}
}

type podcastRequest struct {
	Title          string              `json:"title"`
	DocumentID     int                 `json:"documentId"`
	BrandID        *int                `json:"brandId"`
	SegmentID      *int                `json:"segmentId"`
	HostPersonaID  int                 `json:"hostPersonaId"`
	GuestPersonaID int                 `json:"guestPersonaId"`
	Script         []models.ScriptLine `json:"script"`
}

// POST /api/podcasts
func (h *PodcastHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	var req podcastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	p, err := h.podcasts.Create(r.Context(), user.ID, domain.PodcastInput{
		Title:          req.Title,
		DocumentID:     req.DocumentID,
		BrandID:        req.BrandID,
		SegmentID:      req.SegmentID,
		HostPersonaID:  req.HostPersonaID,
		GuestPersonaID: req.GuestPersonaID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GET /api/podcasts
func (h *PodcastHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	list, err := h.podcasts.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/podcasts/{id}
func (h *PodcastHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.podcasts.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PUT /api/podcasts/{id}
func (h *PodcastHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	var req struct {
		Title          *string             `json:"title"`
		BrandID        *int                `json:"brandId"`
		SegmentID      *int                `json:"segmentId"`
		HostPersonaID  *int                `json:"hostPersonaId"`
		GuestPersonaID *int                `json:"guestPersonaId"`
		Script         []models.ScriptLine `json:"script"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	p, err := h.podcasts.Update(r.Context(), user.ID, id, domain.PodcastUpdate{
		Title:          req.Title,
		BrandID:        req.BrandID,
		SegmentID:      req.SegmentID,
		HostPersonaID:  req.HostPersonaID,
		GuestPersonaID: req.GuestPersonaID,
		Script:         req.Script,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DELETE /api/podcasts/{id}
func (h *PodcastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.podcasts.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/podcasts/{id}/generate
func (h *PodcastHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	job, err := h.podcasts.Generate(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "podcast generation queued",
		Fields:  map[string]any{"podcastID": id, "jobID": job.ID},
	})
	writeJSON(w, http.StatusAccepted, job)
}

// POST /api/podcasts/{id}/generate-audio
func (h *PodcastHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	job, err := h.podcasts.GenerateAudio(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}

// GET /api/podcasts/{id}/audio
func (h *PodcastHandler) Audio(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	p, err := h.podcasts.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if p.AudioPath == nil {
		writeError(w, h.log, apperr.NotFound("podcast audio"))
		return
	}
	data, err := h.blobs.Get(r.Context(), *p.AudioPath)
	if err != nil {
		writeError(w, h.log, apperr.NotFound("podcast audio"))
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	_, _ = w.Write(data)
}
