package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/sse"
	presensisvc "github.com/pemda-presensi/presensi-backend-go/internal/service/presensi"
)

type StreamHandler interface {
	PresensiStream(w http.ResponseWriter, r *http.Request)
}

type StreamHandlerImpl struct {
	hub *sse.Hub
}

func NewStreamHandler(hub *sse.Hub) StreamHandler {
	return &StreamHandlerImpl{hub: hub}
}

// PresensiStream handles the SSE connection for the live check-in feed.
// Events arrive from the hub when a check-in commits; there is no database
// polling loop behind this endpoint.
func (h *StreamHandlerImpl) PresensiStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(presensisvc.TopicPresensi)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(60 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
