package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Handler returns an HTTP handler streaming admin actions as server-sent events.
// ?types= and ?entities= take comma separated filters.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		filters := append(splitParam(r, QueryParamTypes), splitParam(r, QueryParamEntities)...)

		client := hub.Register(filters)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", filters)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   filters,
			},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(w, flusher, event) {
					log.Warn(LogMsgWriteError, "client_id", client.ID)
					return
				}

			case <-ticker.C:
				if !write(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, f http.Flusher, e Event) bool {
	msg, err := FormatSSEMessage(e)
	if err != nil {
		return false
	}
	if _, err := w.Write(msg); err != nil {
		return false
	}
	f.Flush()
	return true
}

func splitParam(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
