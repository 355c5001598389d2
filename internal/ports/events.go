package ports

import "github.com/brandonbryant12/content-studio-sub011/internal/models"

// JobEvent is pushed over the websocket hub as a generation advances.
// Polling GET /api/jobs/{id} remains the source of truth; events are a hint
// to re-fetch.
type JobEvent struct {
	OwnerID int              `json:"-"`
	JobID   string           `json:"jobId"`
	Kind    models.JobKind   `json:"kind"`
	Status  models.JobStatus `json:"status"`
	Step    string           `json:"step"`
	Error   string           `json:"error,omitempty"`
}

// JobEventSource is implemented by the generation runner; main drains the
// channel into the websocket hub.
type JobEventSource interface {
	Events() <-chan JobEvent
}
