// Package creation implements the character creation orchestrator: the guided
// wizard, the generate-and-confirm loop, and NPC management.
package creation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
	"github.com/KirkDiggler/dnd-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd-companion/internal/repositories/gamesession"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

const (
	defaultReplyTimeout   = 60 * time.Second
	defaultReplaceTimeout = 30 * time.Second

	cancelToken = "cancel"
	yesToken    = "yes"

	msgNoActiveGame      = "There is no active D&D game in this channel. Use `!dnd` to create one first."
	msgNotAPlayer        = "You are not a player in this D&D game."
	msgCreationCancelled = "Character creation cancelled."
)

// CharacterGenerator produces random characters and replacement names.
// Implemented by generator.Generator.
type CharacterGenerator interface {
	Generate() *dnd5e.Character
	UnusedName(used map[string]bool) (string, bool)
}

// Config holds the dependencies for the creation orchestrator
type Config struct {
	SessionRepo gamesession.Repository
	Messenger   messaging.Messenger
	Generator   CharacterGenerator
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// ReplyTimeout bounds every per-step wait; defaults to 60s
	ReplyTimeout time.Duration
	// ReplaceTimeout bounds the replace-existing-character gate; defaults to 30s
	ReplaceTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Messenger == nil {
		vb.RequiredField("Messenger")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}

	return vb.Build()
}

// Orchestrator implements the creation.Service interface
type Orchestrator struct {
	sessionRepo    gamesession.Repository
	messenger      messaging.Messenger
	generator      CharacterGenerator
	clock          clock.Clock
	idgen          idgen.Generator
	replyTimeout   time.Duration
	replaceTimeout time.Duration

	// channelLocks serializes the read-modify-write of each channel's session
	// so two players confirming at the same instant cannot lose an update
	channelLocks sync.Map // channelID -> *sync.Mutex
}

// New creates a new creation orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		sessionRepo:    cfg.SessionRepo,
		messenger:      cfg.Messenger,
		generator:      cfg.Generator,
		clock:          cfg.Clock,
		idgen:          cfg.IDGenerator,
		replyTimeout:   cfg.ReplyTimeout,
		replaceTimeout: cfg.ReplaceTimeout,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.idgen == nil {
		o.idgen = idgen.NewUUID("char")
	}
	if o.replyTimeout <= 0 {
		o.replyTimeout = defaultReplyTimeout
	}
	if o.replaceTimeout <= 0 {
		o.replaceTimeout = defaultReplaceTimeout
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ creation.Service = (*Orchestrator)(nil)

// lockChannel takes the per-channel serialization lock and returns the unlock
func (o *Orchestrator) lockChannel(channelID string) func() {
	muAny, _ := o.channelLocks.LoadOrStore(channelID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// getSession loads the session for a channel, reporting the missing-game
// precondition to the channel
func (o *Orchestrator) getSession(ctx context.Context, channelID string) (*dnd5e.GameSession, error) {
	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: channelID})
	if err != nil {
		if errors.IsNotFound(err) {
			o.say(ctx, channelID, msgNoActiveGame)
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to load session")
	}
	return out.Session, nil
}

// playerSession loads the session and checks the actor is a player in it
func (o *Orchestrator) playerSession(ctx context.Context, channelID, actorID string) (*dnd5e.GameSession, error) {
	sess, err := o.getSession(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !sess.IsPlayer(actorID) {
		o.say(ctx, channelID, msgNotAPlayer)
		return nil, errors.PermissionDenied("actor is not a player in this game").
			WithMeta("actor_id", actorID)
	}
	return sess, nil
}

// say sends a plain text card, logging delivery failures instead of failing
// the flow over them
func (o *Orchestrator) say(ctx context.Context, channelID, text string) {
	if err := o.messenger.SendCard(ctx, channelID, &messaging.Card{Description: text}); err != nil {
		slog.Warn("failed to send message", "channel_id", channelID, "error", err)
	}
}

// awaitText waits for the actor's next reply, trims it, and converts the
// cancel token into a Canceled error
func (o *Orchestrator) awaitText(ctx context.Context, actorID, channelID string) (string, error) {
	reply, err := o.messenger.AwaitReply(ctx, actorID, channelID, o.replyTimeout)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, cancelToken) {
		return "", errors.Canceled("creation cancelled by user")
	}
	return reply, nil
}

// isAffirmative reports whether a confirmation reply is an explicit yes
func isAffirmative(reply string) bool {
	return strings.EqualFold(strings.TrimSpace(reply), yesToken)
}

// confirmReplace runs the replace-existing-character gate in the invoking
// channel. Returns true only on an explicit affirmative; a timeout surfaces
// as a DeadlineExceeded error.
func (o *Orchestrator) confirmReplace(ctx context.Context, channelID, actorID string) (bool, error) {
	card := &messaging.Card{
		Title:       "Replace Character?",
		Description: "You already have a character. Want to create a new one?",
		Fields:      []messaging.Field{{Name: "Reply", Value: "Type `yes` or `no`"}},
	}
	if err := o.messenger.SendCard(ctx, channelID, card); err != nil {
		return false, errors.Wrap(err, "failed to send replace prompt")
	}

	reply, err := o.messenger.AwaitReply(ctx, actorID, channelID, o.replaceTimeout)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(reply), yesToken), nil
}

// persistCharacter performs the single atomic write of a completed record:
// re-fetch the session under the channel lock, set the actor's character,
// bump LastUpdated, save.
func (o *Orchestrator) persistCharacter(ctx context.Context, channelID, actorID string, ch *dnd5e.Character) error {
	unlock := o.lockChannel(channelID)
	defer unlock()

	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: channelID})
	if err != nil {
		return errors.Wrap(err, "failed to reload session for write")
	}
	sess := out.Session
	if sess.Characters == nil {
		sess.Characters = make(map[string]*dnd5e.Character)
	}
	sess.Characters[actorID] = ch
	sess.LastUpdated = o.clock.Now().Unix()

	if _, err := o.sessionRepo.Save(ctx, gamesession.SaveInput{Session: sess}); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

// announceIfReady re-reads the session and posts the ready-for-next-phase
// notice when every player has a character. Informational side effect only.
func (o *Orchestrator) announceIfReady(ctx context.Context, channelID string) {
	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: channelID})
	if err != nil {
		slog.Warn("failed to re-read session for ready check", "channel_id", channelID, "error", err)
		return
	}
	if out.Session.AllPlayersReady() {
		o.say(ctx, channelID, "As everyone made their character, now use `!campaign_setup` to set up the theme of your adventure!")
	}
}

// resolveDuplicateName swaps a generated character's name for an unused one
// when it collides, case-insensitively, with another record in the session.
// Only generated names are ever resolved; human-entered names are left alone
// by the callers.
func (o *Orchestrator) resolveDuplicateName(sess *dnd5e.GameSession, excludeActorID string, ch *dnd5e.Character) {
	used := sess.UsedCharacterNames(excludeActorID)
	if !used[strings.ToLower(ch.Name)] {
		return
	}
	// Keep the colliding name when the pool is exhausted
	if name, ok := o.generator.UnusedName(used); ok {
		ch.Name = name
	}
}
