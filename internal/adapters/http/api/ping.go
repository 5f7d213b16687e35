package api

import (
	"net/http"
)

// PingHandler answers keep-alive pings from chat-bot timers.
type PingHandler struct{}

// NewPingHandler creates a new ping handler.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

// HandlePing handles GET /ping requests.
func (h *PingHandler) HandlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}
