package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
	"github.com/KirkDiggler/dnd-companion/internal/repositories/gamesession"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

const msgNPCUnauthorized = "Only the Game Master or game creator can manage NPCs."

// CreateNPC generates an NPC and appends it to the session. Only the GM or
// the session creator may create NPCs. A caller-supplied name overrides the
// generated one and is never altered by the duplicate-name resolver; purely
// generated names are resolved against the session.
func (o *Orchestrator) CreateNPC(ctx context.Context, input *creation.CreateNPCInput) (*creation.CreateNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("channelID", input.ChannelID, vb)
	errors.ValidateRequired("actorID", input.ActorID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if !sess.CanManageNPCs(input.ActorID) {
		o.say(ctx, input.ChannelID, msgNPCUnauthorized)
		return nil, errors.PermissionDenied("only the GM or creator can create NPCs").
			WithMeta("actor_id", input.ActorID)
	}

	npc := o.generator.Generate()
	npc.IsNPC = true

	if name := strings.TrimSpace(input.Name); name != "" {
		npc.Name = name
	} else {
		o.resolveDuplicateName(sess, "", npc)
	}

	unlock := o.lockChannel(input.ChannelID)
	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: input.ChannelID})
	if err != nil {
		unlock()
		return nil, errors.Wrap(err, "failed to reload session for write")
	}
	fresh := out.Session
	fresh.NPCs = append(fresh.NPCs, npc)
	fresh.LastUpdated = o.clock.Now().Unix()
	_, err = o.sessionRepo.Save(ctx, gamesession.SaveInput{Session: fresh})
	unlock()
	if err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	card := characterCard(
		fmt.Sprintf("NPC Created: %s", npc.Name),
		"A new NPC has joined the adventure!",
		npc,
	)
	if err := o.messenger.SendCard(ctx, input.ChannelID, card); err != nil {
		return nil, errors.Wrap(err, "failed to announce NPC")
	}

	return &creation.CreateNPCOutput{NPC: npc}, nil
}

// ListNPCs posts and returns the session's NPC roster
func (o *Orchestrator) ListNPCs(ctx context.Context, input *creation.ListNPCsInput) (*creation.ListNPCsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if len(sess.NPCs) == 0 {
		o.say(ctx, input.ChannelID, "There are no NPCs in this game yet. Use `!create_npc` to create one.")
		return &creation.ListNPCsOutput{}, nil
	}

	card := &messaging.Card{
		Title:       "NPCs in this Adventure",
		Description: fmt.Sprintf("There are %d NPCs in this game.", len(sess.NPCs)),
	}
	for i, npc := range sess.NPCs {
		card.Fields = append(card.Fields, messaging.Field{
			Name:   fmt.Sprintf("%d. %s", i+1, npc.Name),
			Value:  fmt.Sprintf("Race: %s\nClass: %s\nLevel: %d", npc.Race, npc.Class, npc.Level),
			Inline: true,
		})
	}
	if err := o.messenger.SendCard(ctx, input.ChannelID, card); err != nil {
		return nil, errors.Wrap(err, "failed to send NPC list")
	}

	return &creation.ListNPCsOutput{NPCs: sess.NPCs}, nil
}

// GetNPC posts and returns the detailed view of one NPC, matched by name
// case-insensitively
func (o *Orchestrator) GetNPC(ctx context.Context, input *creation.GetNPCInput) (*creation.GetNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("channelID", input.ChannelID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	npc, _ := sess.FindNPC(input.Name)
	if npc == nil {
		o.say(ctx, input.ChannelID, fmt.Sprintf("No NPC named '%s' was found.", input.Name))
		return nil, errors.NotFoundf("no NPC named %q", input.Name)
	}

	if err := o.messenger.SendCard(ctx, input.ChannelID, npcDetailCard(npc)); err != nil {
		return nil, errors.Wrap(err, "failed to send NPC detail")
	}

	return &creation.GetNPCOutput{NPC: npc}, nil
}

// RemoveNPC deletes an NPC by name. GM/creator only.
func (o *Orchestrator) RemoveNPC(ctx context.Context, input *creation.RemoveNPCInput) (*creation.RemoveNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("channelID", input.ChannelID, vb)
	errors.ValidateRequired("actorID", input.ActorID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if !sess.CanManageNPCs(input.ActorID) {
		o.say(ctx, input.ChannelID, msgNPCUnauthorized)
		return nil, errors.PermissionDenied("only the GM or creator can remove NPCs").
			WithMeta("actor_id", input.ActorID)
	}

	unlock := o.lockChannel(input.ChannelID)
	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: input.ChannelID})
	if err != nil {
		unlock()
		return nil, errors.Wrap(err, "failed to reload session for write")
	}
	fresh := out.Session

	removed, idx := fresh.FindNPC(input.Name)
	if removed == nil {
		unlock()
		o.say(ctx, input.ChannelID, fmt.Sprintf("No NPC named '%s' was found.", input.Name))
		return nil, errors.NotFoundf("no NPC named %q", input.Name)
	}
	fresh.NPCs = append(fresh.NPCs[:idx], fresh.NPCs[idx+1:]...)
	fresh.LastUpdated = o.clock.Now().Unix()
	_, err = o.sessionRepo.Save(ctx, gamesession.SaveInput{Session: fresh})
	unlock()
	if err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	o.say(ctx, input.ChannelID, fmt.Sprintf("NPC '%s' has been removed from the game.", removed.Name))

	return &creation.RemoveNPCOutput{Removed: removed}, nil
}
