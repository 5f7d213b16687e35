// Package catalog holds the command catalog the engine consumes: numeric
// and list descriptors, interaction verbs, joke dictionaries, fixed
// per-user overrides and daily-title triggers.
//
// The catalog is read-only after startup. Validate must pass before the
// service begins serving; a broken descriptor is a configuration error,
// not a request-time condition.
package catalog

import (
	"fmt"
	"strings"
)

// Phrase selects the sentence family a numeric stat is rendered with.
type Phrase string

// Phrase families, matching the catalog's original message shapes.
const (
	PhraseIs    Phrase = "is"    // "{user}, your {label} is {v}{unit} today!"
	PhrasePlain Phrase = "plain" // "{user}, {label} {v}{unit} today!"
	PhraseAt    Phrase = "at"    // "{user}, your {label} at {v}{unit} today!"
	PhraseHolds Phrase = "holds" // "{user}, your {label} holds {v}{unit} today!"
)

// Level buckets a generated value for joke selection.
type Level string

// Levels, from the descriptor's cutoff points.
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Interaction values are always generated on a fixed percentage range.
const (
	InteractionMin = 1
	InteractionMax = 100

	interactionLevelLow  = 30
	interactionLevelHigh = 70
)

// NumericDescriptor describes a numeric daily stat.
type NumericDescriptor struct {
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	LevelLow  int    `yaml:"level_low"`
	LevelHigh int    `yaml:"level_high"`
	Label     string `yaml:"label"`
	Unit      string `yaml:"unit"`
	UnitSpace bool   `yaml:"unit_space"`
	Phrase    Phrase `yaml:"phrase"`
	Group     string `yaml:"group"` // joke-group fallback key, e.g. "love"
}

// Level buckets v against the descriptor's cutoffs.
func (d NumericDescriptor) Level(v int) Level {
	switch {
	case v <= d.LevelLow:
		return LevelLow
	case v <= d.LevelHigh:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// InteractionLevel buckets an interaction power value.
func InteractionLevel(v int) Level {
	switch {
	case v <= interactionLevelLow:
		return LevelLow
	case v <= interactionLevelHigh:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// ListDescriptor describes an enumerated-choice daily command.
type ListDescriptor struct {
	Label   string   `yaml:"label"`
	Choices []string `yaml:"choices"`
}

// JokeSet holds the per-level joke lines for a command or group.
type JokeSet struct {
	Low    []string `yaml:"low"`
	Medium []string `yaml:"medium"`
	High   []string `yaml:"high"`
}

// ForLevel returns the joke lines for a level.
func (j JokeSet) ForLevel(level Level) []string {
	switch level {
	case LevelLow:
		return j.Low
	case LevelMedium:
		return j.Medium
	default:
		return j.High
	}
}

// Aspect configures a daily title: the first user whose generated value
// hits Trigger (or whose list choice contains Choice) claims Title for
// the day.
type Aspect struct {
	Title   string `yaml:"title"`
	Trigger int    `yaml:"trigger"`
	Choice  string `yaml:"choice"`
}

// Override fixes the outcome of a specific requester/target/command triple.
type Override struct {
	Requester string `yaml:"requester"`
	Target    string `yaml:"target"`
	Command   string `yaml:"command"`
	Message   string `yaml:"message"`
}

// File is the YAML-facing catalog document used for overlays.
type File struct {
	Stats        map[string]NumericDescriptor `yaml:"stats"`
	Lists        map[string]ListDescriptor    `yaml:"lists"`
	Interactions map[string]string            `yaml:"interactions"`
	Jokes        map[string]JokeSet           `yaml:"jokes"`
	Specials     map[string]map[string]string `yaml:"specials"`
	Overrides    []Override                   `yaml:"overrides"`
	Aspects      map[string]Aspect            `yaml:"aspects"`
}

// Catalog is the merged, validated command catalog.
type Catalog struct {
	numerics  map[string]NumericDescriptor
	lists     map[string]ListDescriptor
	verbs     map[string]string
	jokes     map[string]JokeSet
	specials  map[string]map[string]string
	overrides map[string]string
	aspects   map[string]Aspect
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		numerics:  make(map[string]NumericDescriptor),
		lists:     make(map[string]ListDescriptor),
		verbs:     make(map[string]string),
		jokes:     make(map[string]JokeSet),
		specials:  make(map[string]map[string]string),
		overrides: make(map[string]string),
		aspects:   make(map[string]Aspect),
	}
}

// Merge overlays f onto the catalog; entries replace by name.
func (c *Catalog) Merge(f File) {
	for name, d := range f.Stats {
		c.numerics[strings.ToLower(name)] = d
	}
	for name, d := range f.Lists {
		c.lists[strings.ToLower(name)] = d
	}
	for name, verb := range f.Interactions {
		c.verbs[strings.ToLower(name)] = verb
	}
	for name, set := range f.Jokes {
		c.jokes[strings.ToLower(name)] = set
	}
	for user, cmds := range f.Specials {
		user = strings.ToLower(user)
		if c.specials[user] == nil {
			c.specials[user] = make(map[string]string)
		}
		for cmd, msg := range cmds {
			c.specials[user][strings.ToLower(cmd)] = msg
		}
	}
	for _, o := range f.Overrides {
		c.overrides[overrideKey(o.Requester, o.Target, o.Command)] = o.Message
	}
	for name, a := range f.Aspects {
		c.aspects[strings.ToLower(name)] = a
	}
}

func overrideKey(requester, target, command string) string {
	return strings.ToLower(requester) + "|" + strings.ToLower(target) + "|" + strings.ToLower(command)
}

// Numeric looks up a numeric descriptor.
func (c *Catalog) Numeric(name string) (NumericDescriptor, bool) {
	d, ok := c.numerics[name]
	return d, ok
}

// List looks up a list descriptor.
func (c *Catalog) List(name string) (ListDescriptor, bool) {
	d, ok := c.lists[name]
	return d, ok
}

// Verb looks up the past-tense verb phrase for an interaction command.
func (c *Catalog) Verb(name string) (string, bool) {
	v, ok := c.verbs[name]
	return v, ok
}

// IsInteraction reports whether name is a two-party interaction command.
func (c *Catalog) IsInteraction(name string) bool {
	_, ok := c.verbs[name]
	return ok
}

// Known reports whether name resolves to any catalog entry.
func (c *Catalog) Known(name string) bool {
	if _, ok := c.numerics[name]; ok {
		return true
	}
	if _, ok := c.lists[name]; ok {
		return true
	}
	return c.IsInteraction(name)
}

// Jokes returns the joke lines for a command and level, falling back to
// the command's group entry ("<group>_group") when no specific set exists.
func (c *Catalog) Jokes(name string, level Level) []string {
	if set, ok := c.jokes[name]; ok {
		if lines := set.ForLevel(level); len(lines) > 0 {
			return lines
		}
	}
	if d, ok := c.numerics[name]; ok && d.Group != "" {
		if set, ok := c.jokes[d.Group+"_group"]; ok {
			return set.ForLevel(level)
		}
	}
	return nil
}

// Special returns the fixed message for a user/command pair, if any.
func (c *Catalog) Special(user, command string) (string, bool) {
	cmds, ok := c.specials[user]
	if !ok {
		return "", false
	}
	msg, ok := cmds[command]
	return msg, ok
}

// ConsentOverride returns the fixed outcome for a requester/target/command
// triple, if any.
func (c *Catalog) ConsentOverride(requester, target, command string) (string, bool) {
	msg, ok := c.overrides[overrideKey(requester, target, command)]
	return msg, ok
}

// AspectFor returns the daily-title configuration for a command, if any.
func (c *Catalog) AspectFor(name string) (Aspect, bool) {
	a, ok := c.aspects[name]
	return a, ok
}

// Validate checks every descriptor invariant. It is called once at startup
// and must fail the process on error.
func (c *Catalog) Validate() error {
	for name, d := range c.numerics {
		if d.Label == "" {
			return fmt.Errorf("%w: stat %q has no label", ErrInvalidCatalog, name)
		}
		if !(d.Min <= d.LevelLow && d.LevelLow <= d.LevelHigh && d.LevelHigh <= d.Max) {
			return fmt.Errorf("%w: stat %q levels must satisfy min <= low <= high <= max (got %d <= %d <= %d <= %d)",
				ErrInvalidCatalog, name, d.Min, d.LevelLow, d.LevelHigh, d.Max)
		}
		switch d.Phrase {
		case PhraseIs, PhrasePlain, PhraseAt, PhraseHolds:
		default:
			return fmt.Errorf("%w: stat %q has unknown phrase %q", ErrInvalidCatalog, name, d.Phrase)
		}
	}
	for name, d := range c.lists {
		if len(d.Choices) == 0 {
			return fmt.Errorf("%w: list %q has no choices", ErrInvalidCatalog, name)
		}
		if d.Label == "" {
			return fmt.Errorf("%w: list %q has no label", ErrInvalidCatalog, name)
		}
	}
	for name, verb := range c.verbs {
		if strings.TrimSpace(verb) == "" {
			return fmt.Errorf("%w: interaction %q has no verb phrase", ErrInvalidCatalog, name)
		}
	}
	for name, a := range c.aspects {
		if a.Title == "" {
			return fmt.Errorf("%w: aspect %q has no title", ErrInvalidCatalog, name)
		}
		if d, ok := c.numerics[name]; ok {
			if a.Trigger < d.Min || a.Trigger > d.Max {
				return fmt.Errorf("%w: aspect %q trigger %d outside [%d, %d]",
					ErrInvalidCatalog, name, a.Trigger, d.Min, d.Max)
			}
			continue
		}
		if d, ok := c.lists[name]; ok {
			if a.Choice == "" {
				return fmt.Errorf("%w: list aspect %q has no choice predicate", ErrInvalidCatalog, name)
			}
			found := false
			for _, choice := range d.Choices {
				if strings.Contains(choice, a.Choice) {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: list aspect %q predicate %q matches no choice",
					ErrInvalidCatalog, name, a.Choice)
			}
			continue
		}
		return fmt.Errorf("%w: aspect %q has no backing command", ErrInvalidCatalog, name)
	}
	return nil
}
