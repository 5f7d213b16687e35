// Package types contains common types used across the application
package types

// Query is a single parsed stat request.
type Query struct {
	// SenderRaw is the requesting username as received, before cleaning.
	SenderRaw string
	// TargetRaw is the interaction target as received, before cleaning.
	TargetRaw string
	// Command is the lowercased command name, e.g. "beard" or "hug".
	Command string
	// Arg is the free-form argument for commands like "top" and "whois".
	Arg string
	// Jokes toggles the joke suffix on stat and interaction replies.
	Jokes bool
	// Consent routes interactions through the consent handshake.
	Consent bool
}
