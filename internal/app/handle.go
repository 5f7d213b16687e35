package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roake/dailystat/internal/domain/aspect"
	"github.com/roake/dailystat/internal/domain/catalog"
	"github.com/roake/dailystat/internal/domain/consent"
	"github.com/roake/dailystat/internal/domain/ledger"
	"github.com/roake/dailystat/internal/domain/seed"
	"github.com/roake/dailystat/internal/domain/types"
	"github.com/roake/dailystat/pkg/logger"
	"github.com/roake/dailystat/pkg/metrics"
)

// fallbackSender is used when a request names no acting user.
const fallbackSender = "someone"

// CleanUsername strips a leading @ and lowercases the name for use as a
// map key and seed component.
func CleanUsername(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "@"))
}

// FormatDisplayName renders a username for chat output, keeping the
// original casing and ensuring a leading @.
func FormatDisplayName(name string) string {
	if strings.HasPrefix(name, "@") {
		return name
	}
	return "@" + name
}

// Handle resolves a single parsed request into a plain-text reply. It
// never fails: unknown commands and protocol misuse degrade to
// explanatory messages.
func (s *Service) Handle(ctx context.Context, q types.Query) string {
	senderRaw := q.SenderRaw
	if senderRaw == "" {
		senderRaw = fallbackSender
	}
	command := strings.ToLower(q.Command)
	sender := CleanUsername(senderRaw)
	target := CleanUsername(q.TargetRaw)
	senderDisplay := FormatDisplayName(senderRaw)

	if msg, ok := s.catalog.Special(sender, command); ok {
		metrics.RecordCommand("special")
		return msg
	}

	day := s.gen.Day()
	sd := seed.Seed{Day: day, Sender: sender, Target: target}

	if d, ok := s.catalog.Numeric(command); ok {
		return s.handleNumeric(ctx, sd, command, d, sender, senderDisplay, q.Jokes)
	}
	if d, ok := s.catalog.List(command); ok {
		return s.handleList(ctx, sd, command, d, sender, senderDisplay)
	}
	if s.catalog.IsInteraction(command) {
		return s.handleInteraction(ctx, q, sd, command, sender, target, senderDisplay)
	}

	switch command {
	case "accept":
		return s.handleAccept(ctx, q, day, sender, senderDisplay)
	case "deny":
		return s.handleDeny(ctx, sender, senderDisplay)
	case "top":
		return s.handleTop(q.Arg, senderDisplay)
	case "whois":
		return s.handleWhois(day, q.Arg, senderDisplay)
	case "giveaway":
		return s.handleGiveaway(day, senderDisplay)
	}

	metrics.RecordUnknownCommand()
	return fmt.Sprintf("%s, invalid type. Try beard, hair, mila, ivy, theo, or one of the fun ones like hug, boop, bonk, pat, etc.", senderDisplay)
}

func (s *Service) handleNumeric(ctx context.Context, sd seed.Seed, command string, d catalog.NumericDescriptor, sender, senderDisplay string, jokes bool) string {
	a, hasAspect := s.catalog.AspectFor(command)
	if !hasAspect {
		v := s.gen.Value(sd, command, d.Min, d.Max)
		metrics.RecordCommand("stat")
		s.usage.Record(sender, command)
		return s.numericMessage(sd, command, d, senderDisplay, v, jokes)
	}

	var msg string
	err := s.gate.Do(command, func() error {
		v := s.gen.Value(sd, command, d.Min, d.Max)
		suffix := ""
		if v == a.Trigger {
			w, claimed := s.aspects.TryClaim(sd.Day, command, sender, strconv.Itoa(v), a.Title)
			switch {
			case claimed:
				suffix = fmt.Sprintf(" You are the %s!", a.Title)
				s.logger.Info(ctx, "daily title claimed",
					logger.String("command", command),
					logger.String("holder", sender),
					logger.String("day", sd.Day),
				)
			case w.Holder == sender:
				suffix = fmt.Sprintf(" You are still the %s!", a.Title)
			default:
				v = aspect.Nudge(v, d.Min, d.Max)
			}
		}
		msg = s.numericMessage(sd, command, d, senderDisplay, v, jokes) + suffix
		return nil
	})
	if err != nil {
		metrics.RecordGateBusy()
		return fmt.Sprintf("%s, please wait a moment and try %s again!", senderDisplay, command)
	}
	metrics.RecordCommand("stat")
	s.usage.Record(sender, command)
	return msg
}

func (s *Service) handleList(ctx context.Context, sd seed.Seed, command string, d catalog.ListDescriptor, sender, senderDisplay string) string {
	a, hasAspect := s.catalog.AspectFor(command)
	if !hasAspect {
		choice := d.Choices[s.gen.Index(sd, command, len(d.Choices))]
		metrics.RecordCommand("list")
		s.usage.Record(sender, command)
		return fmt.Sprintf("%s, your %s today: %s!", senderDisplay, d.Label, choice)
	}

	var msg string
	err := s.gate.Do(command, func() error {
		idx := s.gen.Index(sd, command, len(d.Choices))
		choice := d.Choices[idx]
		suffix := ""
		if strings.Contains(choice, a.Choice) {
			w, claimed := s.aspects.TryClaim(sd.Day, command, sender, choice, a.Title)
			switch {
			case claimed:
				suffix = fmt.Sprintf(" You are the %s!", a.Title)
				s.logger.Info(ctx, "daily title claimed",
					logger.String("command", command),
					logger.String("holder", sender),
					logger.String("day", sd.Day),
				)
			case w.Holder == sender:
				suffix = fmt.Sprintf(" You are still the %s!", a.Title)
			default:
				choice = d.Choices[aspect.NudgeIndex(idx, len(d.Choices))]
			}
		}
		msg = fmt.Sprintf("%s, your %s today: %s!%s", senderDisplay, d.Label, choice, suffix)
		return nil
	})
	if err != nil {
		metrics.RecordGateBusy()
		return fmt.Sprintf("%s, please wait a moment and try %s again!", senderDisplay, command)
	}
	metrics.RecordCommand("list")
	s.usage.Record(sender, command)
	return msg
}

func (s *Service) handleInteraction(ctx context.Context, q types.Query, sd seed.Seed, command, sender, target, senderDisplay string) string {
	// Self or absent target: a one-party outcome, no shared state moves.
	if q.TargetRaw == "" || sender == target {
		v := s.gen.Value(sd, command, catalog.InteractionMin, catalog.InteractionMax)
		level := catalog.InteractionLevel(v)
		metrics.RecordCommand("interaction")
		return fmt.Sprintf("%s tried to %s the air with %d%% power!%s",
			senderDisplay, command, v, s.joke(sd, command, level, q.Jokes))
	}

	targetDisplay := FormatDisplayName(q.TargetRaw)

	if q.Consent {
		outcome, err := s.consent.Request(sender, target, command, sd.Day)
		switch {
		case errors.Is(err, consent.ErrTargetBusy):
			return fmt.Sprintf("%s, %s already has a request pending. Try again in a moment!",
				senderDisplay, targetDisplay)
		case err != nil:
			s.logger.Warn(ctx, "consent request rejected", logger.Error(err))
			return fmt.Sprintf("%s, that request can't be made right now.", senderDisplay)
		case outcome == consent.OutcomePending:
			metrics.RecordCommand("consent")
			return fmt.Sprintf("%s, %s wants to %s you! Send accept or deny within %d seconds.",
				targetDisplay, senderDisplay, command, int(s.consentTTL.Seconds()))
		}
		// Already granted today: fall through and execute.
	}

	msg := s.executeInteraction(sd, command, sender, target, senderDisplay, targetDisplay, q.Jokes)
	metrics.RecordCommand("interaction")
	s.usage.Record(sender, command)
	return msg
}

// executeInteraction renders the two-party outcome. Fixed overrides for a
// requester/target/command triple bypass value generation.
func (s *Service) executeInteraction(sd seed.Seed, command, sender, target, senderDisplay, targetDisplay string, jokes bool) string {
	if msg, ok := s.catalog.ConsentOverride(sender, target, command); ok {
		return msg
	}
	verb, ok := s.catalog.Verb(command)
	if !ok {
		verb = command
	}
	v := s.gen.Value(sd, command, catalog.InteractionMin, catalog.InteractionMax)
	level := catalog.InteractionLevel(v)
	return fmt.Sprintf("%s %s %s with %d%% power!%s",
		senderDisplay, verb, targetDisplay, v, s.joke(sd, command, level, jokes))
}

func (s *Service) handleAccept(ctx context.Context, q types.Query, day, sender, senderDisplay string) string {
	req, err := s.consent.Accept(sender, day)
	if err != nil {
		return fmt.Sprintf("%s, there is nothing to accept.", senderDisplay)
	}
	s.logger.Info(ctx, "consent accepted",
		logger.String("requester", req.Requester),
		logger.String("target", sender),
		logger.String("command", req.Command),
	)
	sd := seed.Seed{Day: day, Sender: req.Requester, Target: sender}
	msg := s.executeInteraction(sd, req.Command, req.Requester, sender,
		FormatDisplayName(req.Requester), senderDisplay, q.Jokes)
	metrics.RecordCommand("interaction")
	s.usage.Record(req.Requester, req.Command)
	return msg
}

func (s *Service) handleDeny(ctx context.Context, sender, senderDisplay string) string {
	req, err := s.consent.Deny(sender)
	if err != nil {
		return fmt.Sprintf("%s, there is nothing to deny.", senderDisplay)
	}
	s.logger.Info(ctx, "consent denied",
		logger.String("requester", req.Requester),
		logger.String("target", sender),
		logger.String("command", req.Command),
	)
	return fmt.Sprintf("%s denied %s's %s!", senderDisplay, FormatDisplayName(req.Requester), req.Command)
}

func (s *Service) handleTop(arg, senderDisplay string) string {
	metrics.RecordCommand("top")
	arg = strings.ToLower(strings.TrimSpace(arg))

	switch {
	case arg == "":
		rows := s.usage.TopUsers(s.maxTopLimit)
		if len(rows) == 0 {
			return "No usage recorded yet!"
		}
		return "Top users: " + joinRows(rows, true)
	case arg == "commands":
		rows := s.usage.TopCommands(s.maxTopLimit)
		if len(rows) == 0 {
			return "No usage recorded yet!"
		}
		return "Top commands: " + joinRows(rows, false)
	case s.catalog.Known(arg):
		rows := s.usage.TopUsersFor(arg, s.maxTopLimit)
		if len(rows) == 0 {
			return fmt.Sprintf("No one has used %s yet!", arg)
		}
		return fmt.Sprintf("Top %s users: %s", arg, joinRows(rows, true))
	default:
		return fmt.Sprintf("%s, I can't rank %q.", senderDisplay, arg)
	}
}

func (s *Service) handleWhois(day, arg, senderDisplay string) string {
	metrics.RecordCommand("whois")
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" {
		return fmt.Sprintf("%s, tell me which title to look up, e.g. whois daddy.", senderDisplay)
	}
	a, ok := s.catalog.AspectFor(arg)
	if !ok {
		return fmt.Sprintf("%s, there is no daily title for %q.", senderDisplay, arg)
	}
	w, ok := s.aspects.Query(day, arg)
	if !ok {
		return fmt.Sprintf("No one has claimed the %s yet today!", a.Title)
	}
	return fmt.Sprintf("The %s is %s!", a.Title, FormatDisplayName(w.Holder))
}

func (s *Service) handleGiveaway(day, senderDisplay string) string {
	metrics.RecordCommand("giveaway")
	users := s.usage.Users()
	if len(users) == 0 {
		return fmt.Sprintf("%s, no participants yet today!", senderDisplay)
	}
	// Seeded by day alone so every asker sees the same winner.
	winner := users[s.gen.Index(seed.Seed{Day: day}, "giveaway", len(users))]
	return fmt.Sprintf("Today's giveaway winner is %s! Congratulations!", FormatDisplayName(winner))
}

// joke returns the joke suffix (leading space included) for a command and
// level, or "" when disabled or undefined. Selection is deterministic for
// the seed so replies stay stable for the day.
func (s *Service) joke(sd seed.Seed, command string, level catalog.Level, enabled bool) string {
	if !enabled {
		return ""
	}
	lines := s.catalog.Jokes(command, level)
	if len(lines) == 0 {
		return ""
	}
	return " " + lines[s.gen.Index(sd, command+"#joke", len(lines))]
}

func (s *Service) numericMessage(sd seed.Seed, command string, d catalog.NumericDescriptor, senderDisplay string, v int, jokes bool) string {
	space := ""
	if d.UnitSpace {
		space = " "
	}
	suffix := s.joke(sd, command, d.Level(v), jokes)
	switch d.Phrase {
	case catalog.PhrasePlain:
		return fmt.Sprintf("%s, %s %d%s%s today!%s", senderDisplay, d.Label, v, space, d.Unit, suffix)
	case catalog.PhraseAt:
		return fmt.Sprintf("%s, your %s at %d%s%s today!%s", senderDisplay, d.Label, v, space, d.Unit, suffix)
	case catalog.PhraseHolds:
		return fmt.Sprintf("%s, your %s holds %d%s%s today!%s", senderDisplay, d.Label, v, space, d.Unit, suffix)
	default:
		return fmt.Sprintf("%s, your %s is %d%s%s today!%s", senderDisplay, d.Label, v, space, d.Unit, suffix)
	}
}

// joinRows renders leaderboard rows as "name (count)" pairs, with an @
// prefix when the names are users.
func joinRows(rows []ledger.Row, asUsers bool) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		name := r.Name
		if asUsers {
			name = FormatDisplayName(name)
		}
		fmt.Fprintf(&b, "%s (%d)", name, r.Count)
	}
	return b.String()
}
