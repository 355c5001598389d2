package delivery

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
)

type DocumentHandler struct {
	docs *domain.DocumentService
	log  *logger.ZapLogger
}

func NewDocumentHandler(docs *domain.DocumentService, log *logger.ZapLogger) *DocumentHandler {
	return &DocumentHandler{docs: docs, log: log}
}

// POST /api/documents
// Accepts multipart/form-data with a "file" part, or JSON {title, text}.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())

	var (
		title, filename, contentType string
		raw                          []byte
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			writeError(w, h.log, apperr.Invalid("invalid multipart body: %v", err))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, h.log, apperr.Invalid("file part is required"))
			return
		}
		defer file.Close()

		raw, err = io.ReadAll(file)
		if err != nil {
			writeError(w, h.log, apperr.Invalid("read upload: %v", err))
			return
		}
		title = r.FormValue("title")
		filename = header.Filename
		contentType = header.Header.Get("Content-Type")
	} else {
		var req struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}
		title = req.Title
		raw = []byte(req.Text)
		contentType = "text/plain"
	}

	doc, err := h.docs.Create(r.Context(), user.ID, title, filename, contentType, raw)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "document stored",
		Fields:  map[string]any{"documentID": doc.ID, "bytes": doc.SizeBytes},
	})
	writeJSON(w, http.StatusCreated, doc)
}

// GET /api/documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	docs, err := h.docs.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// GET /api/documents/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	doc, err := h.docs.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// PUT /api/documents/{id}
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	doc, err := h.docs.Update(r.Context(), user.ID, id, req.Title, req.Text)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DELETE /api/documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.docs.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("invalid id")
	}
	return id, nil
}
