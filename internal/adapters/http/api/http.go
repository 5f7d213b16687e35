// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/roake/dailystat/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Handle resolves a parsed request into a plain-text reply.
	Handle(ctx context.Context, q types.Query) string
}

// Server wires HTTP routes for the business API.
type Server struct {
	statHandler   *StatHandler
	pingHandler   *PingHandler
	healthHandler *HealthHandler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithJokesDefault sets the joke toggle used when a request does not say.
func WithJokesDefault(enabled bool) Option {
	return func(s *Server) {
		s.statHandler.jokesDefault = enabled
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		statHandler:   NewStatHandler(deps),
		pingHandler:   NewPingHandler(),
		healthHandler: NewHealthHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/ping", RequestIDMiddleware(MetricsMiddleware(s.pingHandler.HandlePing, "ping")))
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/", RequestIDMiddleware(MetricsMiddleware(s.statHandler.HandleStat, "stat")))
}

// parseQuery maps URL parameters onto a Query. The secondary argument is
// accepted under several aliases for chat-bot compatibility.
func parseQuery(r *http.Request, jokesDefault bool) types.Query {
	params := r.URL.Query()

	senderRaw := params.Get("sender")
	if senderRaw == "" {
		senderRaw = params.Get("user")
	}

	command := strings.ToLower(params.Get("type"))
	if command == "" {
		command = "beard"
	}

	arg := ""
	for _, key := range []string{"arg", "args", "text", "interaction"} {
		if v := params.Get(key); v != "" {
			arg = v
			break
		}
	}

	return types.Query{
		SenderRaw: senderRaw,
		TargetRaw: params.Get("user"),
		Command:   command,
		Arg:       arg,
		Jokes:     jokesEnabled(params.Get("jokes"), params.Get("joke_"+command), jokesDefault),
		Consent:   params.Get("consent") == "true",
	}
}

// jokesEnabled resolves the joke toggle: the global parameter wins, then
// the per-command one, then the configured default.
func jokesEnabled(global, specific string, fallback bool) bool {
	switch global {
	case "true":
		return true
	case "false":
		return false
	}
	switch specific {
	case "true":
		return true
	case "false":
		return false
	}
	return fallback
}
