package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
)

type JobHandler struct {
	jobs *domain.JobService
	log  *logger.ZapLogger
}

func NewJobHandler(jobs *domain.JobService, log *logger.ZapLogger) *JobHandler {
	return &JobHandler{jobs: jobs, log: log}
}

// GET /api/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, h.log, apperr.Invalid("invalid job id"))
		return
	}
	job, err := h.jobs.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// GET /api/jobs?limit=N
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.jobs.List(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
