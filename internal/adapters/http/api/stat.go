package api

import (
	"net/http"
)

// StatHandler answers the main stat route.
type StatHandler struct {
	deps         Dependencies
	jokesDefault bool
}

// NewStatHandler creates a new stat handler.
func NewStatHandler(deps Dependencies) *StatHandler {
	return &StatHandler{deps: deps, jokesDefault: true}
}

// HandleStat handles GET / requests. Every recognized or unrecognized
// command resolves to 200 text/plain; the consumers are chat-bot
// integrations with no error handling of their own.
func (h *StatHandler) HandleStat(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r, h.jokesDefault)
	msg := h.deps.Handle(r.Context(), q)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msg))
}
