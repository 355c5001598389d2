package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type VoiceoverHandler struct {
	voiceovers *domain.VoiceoverService
	blobs      ports.BlobStore
	log        *logger.ZapLogger
}

func NewVoiceoverHandler(voiceovers *domain.VoiceoverService, blobs ports.BlobStore, log *logger.ZapLogger) *VoiceoverHandler {
	return &VoiceoverHandler{voiceovers: voiceovers, blobs: blobs, log: log}
}

// POST /api/voiceovers
func (h *VoiceoverHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	var req struct {
		Title      string `json:"title"`
		DocumentID int    `json:"documentId"`
		BrandID    *int   `json:"brandId"`
		PersonaID  int    `json:"personaId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	v, err := h.voiceovers.Create(r.Context(), user.ID, domain.VoiceoverInput{
		Title:      req.Title,
		DocumentID: req.DocumentID,
		BrandID:    req.BrandID,
		PersonaID:  req.PersonaID,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// GET /api/voiceovers
func (h *VoiceoverHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	list, err := h.voiceovers.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/voiceovers/{id}
func (h *VoiceoverHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	v, err := h.voiceovers.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// PUT /api/voiceovers/{id}
func (h *VoiceoverHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req struct {
		Title     *string `json:"title"`
		BrandID   *int    `json:"brandId"`
		PersonaID *int    `json:"personaId"`
		Script    *string `json:"script"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	v, err := h.voiceovers.Update(r.Context(), user.ID, id, domain.VoiceoverUpdate{
		Title:     req.Title,
		BrandID:   req.BrandID,
		PersonaID: req.PersonaID,
		Script:    req.Script,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// DELETE /api/voiceovers/{id}
func (h *VoiceoverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.voiceovers.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/voiceovers/{id}/generate
func (h *VoiceoverHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	job, err := h.voiceovers.Generate(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "voiceover generation queued",
		Fields:  map[string]any{"voiceoverID": id, "jobID": job.ID},
	})
	writeJSON(w, http.StatusAccepted, job)
}

// GET /api/voiceovers/{id}/audio
func (h *VoiceoverHandler) Audio(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	v, err := h.voiceovers.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if v.AudioPath == nil {
		writeError(w, h.log, apperr.NotFound("voiceover audio"))
		return
	}
	data, err := h.blobs.Get(r.Context(), *v.AudioPath)
	if err != nil {
		writeError(w, h.log, apperr.NotFound("voiceover audio"))
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	_, _ = w.Write(data)
}
