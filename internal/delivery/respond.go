package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps any error onto the wire shape
// {"error": {"code": "...", "message": "..."}}.
func writeError(w http.ResponseWriter, log *logger.ZapLogger, err error) {
	ae := apperr.From(err)
	if ae.Code == apperr.CodeInternal || ae.Code == apperr.CodeProvider {
		log.Log(logger.LogEntry{
			Level:   "error",
			Message: "request failed",
			Error:   err,
		})
	}
	writeJSON(w, ae.Status, map[string]any{
		"error": map[string]string{
			"code":    string(ae.Code),
			"message": ae.Message,
		},
	})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Invalid("invalid json: %v", err)
	}
	return nil
}
