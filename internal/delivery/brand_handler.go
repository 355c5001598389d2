package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type BrandHandler struct {
	brands *domain.BrandService
	log    *logger.ZapLogger
}

func NewBrandHandler(brands *domain.BrandService, log *logger.ZapLogger) *BrandHandler {
	return &BrandHandler{brands: brands, log: log}
}

// POST /api/brands
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())

	var req models.Brand
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	b, err := h.brands.Create(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// GET /api/brands
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	brands, err := h.brands.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

// GET /api/brands/{id}
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	b, err := h.brands.Get(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// PUT /api/brands/{id}
func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req models.Brand
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	b, err := h.brands.Update(r.Context(), user.ID, id, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// DELETE /api/brands/{id}
func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.brands.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
