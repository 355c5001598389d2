package ws

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/delivery"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// Handler upgrades an authenticated client and parks it in the user's room.
// The connection is push-only; incoming frames are drained until disconnect.
func Handler(hub *Hub, auth *domain.AuthService, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := delivery.SessionToken(r)
		if token == "" {
			// browsers cannot set headers on WebSocket dials
			token = r.URL.Query().Get("token")
		}
		user, err := auth.Resolve(r.Context(), token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debugw("ws upgrade failed", "err", err)
			return
		}

		hub.Register(user.ID, conn)
		defer hub.Unregister(user.ID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Pump forwards job events from the runner into the owner's room. Runs until
// the events channel closes.
func Pump(hub *Hub, events <-chan ports.JobEvent, log *zap.SugaredLogger) {
	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Errorw("event marshal failed", "job", ev.JobID, "err", err)
			continue
		}
		hub.SendToUser(ev.OwnerID, payload)
	}
}
