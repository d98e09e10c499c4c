package cases

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/emberpeak/supportbot/src/bot/emoji"
	"github.com/emberpeak/supportbot/src/bot/types"
)

const appealBookEmoji = "<:book2:1420129491757436979>"

// handleButton dispatches the lifecycle buttons attached to case
// channel messages.
func (h *Handler) handleButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	channel, err := s.Channel(i.ChannelID)
	if err != nil {
		log.Printf("cases: fetch channel %s: %v", i.ChannelID, err)
		return
	}

	switch customID {
	case "close_ticket":
		h.closeCase(s, i, channel)
	case "reopen_ticket":
		h.reopenCase(s, i, channel)
	case "delete_ticket":
		h.deleteCase(s, i, channel)
	case "unban_request_staff":
		h.requestStaffDecision(s, i)
	case "accept_unban":
		h.decide(s, i, channel, true)
	case "reject_unban":
		h.decide(s, i, channel, false)
	}
}

// closeCase renames the channel with the closed marker and moves it to
// the closed category for its kind. Appeals keep only the staff
// decision button; tickets and applications get Reopen/Delete.
func (h *Handler) closeCase(s *discordgo.Session, i *discordgo.InteractionCreate, channel *discordgo.Channel) {
	deferUpdate(s, i)

	base := BaseName(channel.Name)
	kind := h.kindOf(channel.ID, channel.Name)

	_, err := s.ChannelEdit(channel.ID, &discordgo.ChannelEdit{
		Name:     CloseName(base),
		ParentID: h.closedCategory(kind),
	})
	if err != nil {
		log.Printf("cases: close channel %s: %v", channel.ID, err)
		return
	}

	var row []discordgo.MessageComponent
	if kind == types.KindUnban {
		row = []discordgo.MessageComponent{h.staffDecisionButton()}
	} else {
		row = []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "reopen_ticket",
				Label:    "Re-Open",
				Emoji:    emoji.Component(h.cfg.Emojis, "reopen", "🔄"),
				Style:    discordgo.SuccessButton,
			},
			discordgo.Button{
				CustomID: "delete_ticket",
				Label:    "Delete",
				Emoji:    emoji.Component(h.cfg.Emojis, "delete", "🗑️"),
				Style:    discordgo.DangerButton,
			},
		}
	}

	h.send(s, channel.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("%s Ticket closed by <@%s>", emoji.Render(h.cfg.Emojis, "close", "🔒"), i.Member.User.ID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: row},
		},
	})

	h.publish("closed", map[string]interface{}{"kind": string(kind), "channel": channel.ID, "user": i.Member.User.ID})
}

// reopenCase restores the original name and category and cancels any
// pending deletion. Appeals cannot be reopened through buttons, so
// they get no controls back.
func (h *Handler) reopenCase(s *discordgo.Session, i *discordgo.InteractionCreate, channel *discordgo.Channel) {
	deferUpdate(s, i)

	h.cancelDelete(channel.ID)

	base := BaseName(channel.Name)
	kind := h.kindOf(channel.ID, channel.Name)

	_, err := s.ChannelEdit(channel.ID, &discordgo.ChannelEdit{
		Name:     base,
		ParentID: h.openCategory(kind),
	})
	if err != nil {
		log.Printf("cases: reopen channel %s: %v", channel.ID, err)
		return
	}

	msg := &discordgo.MessageSend{
		Content: fmt.Sprintf("%s Ticket is reopened! You can continue here.", emoji.Render(h.cfg.Emojis, "reopen", "🔄")),
	}
	if kind != types.KindUnban {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "close_ticket",
					Label:    "Close",
					Emoji:    emoji.Component(h.cfg.Emojis, "close", "🔒"),
					Style:    discordgo.DangerButton,
				},
				discordgo.Button{
					CustomID: "delete_ticket",
					Label:    "Delete",
					Emoji:    emoji.Component(h.cfg.Emojis, "delete", "🗑️"),
					Style:    discordgo.SecondaryButton,
				},
			}},
		}
	}
	h.send(s, channel.ID, msg)

	h.publish("reopened", map[string]interface{}{"kind": string(kind), "channel": channel.ID, "user": i.Member.User.ID})
}

// deleteCase acknowledges, then removes the channel after the grace
// delay. The deletion itself is fire-and-forget.
func (h *Handler) deleteCase(s *discordgo.Session, i *discordgo.InteractionCreate, channel *discordgo.Channel) {
	deferUpdate(s, i)

	h.followUp(s, i, &discordgo.WebhookParams{
		Content: fmt.Sprintf("%s Ticket will be deleted in a few seconds...", emoji.Render(h.cfg.Emojis, "delete", "🗑️")),
		Flags:   discordgo.MessageFlagsEphemeral,
	})

	h.scheduleDelete(s, channel.ID)

	h.publish("delete_scheduled", map[string]interface{}{"channel": channel.ID, "user": i.Member.User.ID})
}

// requestStaffDecision offers the Accept/Reject controls to staff.
// Anyone else gets a private refusal and the case is untouched.
func (h *Handler) requestStaffDecision(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.isStaff(i.Member) {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "❌ You don't have permission to process this unban request.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			log.Printf("cases: refuse staff decision: %v", err)
		}
		return
	}

	deferUpdate(s, i)

	h.followUp(s, i, &discordgo.WebhookParams{
		Content: "🔔 Unban request options:",
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "accept_unban",
					Label:    "Accepted",
					Emoji:    emoji.Component(h.cfg.Emojis, "accept", "✅"),
					Style:    discordgo.SuccessButton,
				},
				discordgo.Button{
					CustomID: "reject_unban",
					Label:    "Rejected",
					Emoji:    emoji.Component(h.cfg.Emojis, "reject", "❌"),
					Style:    discordgo.DangerButton,
				},
			}},
		},
	})
}

// decide moves the appeal to its verdict category, restricts the
// channel back to the original requester plus staff, and posts the
// outcome. Rejected appeals additionally offer a delete control.
func (h *Handler) decide(s *discordgo.Session, i *discordgo.InteractionCreate, channel *discordgo.Channel, accepted bool) {
	deferUpdate(s, i)

	// The requester's ID was stored in the topic at creation.
	ownerID := channel.Topic

	parent := h.cfg.UnbanRejectedCategoryID
	if accepted {
		parent = h.cfg.UnbanAcceptedCategoryID
	}

	_, err := s.ChannelEdit(channel.ID, &discordgo.ChannelEdit{
		ParentID:             parent,
		PermissionOverwrites: h.caseOverwrites(ownerID, s.State.User.ID),
	})
	if err != nil {
		log.Printf("cases: move decided appeal %s: %v", channel.ID, err)
		return
	}

	if accepted {
		h.send(s, channel.ID, &discordgo.MessageSend{
			Content: fmt.Sprintf("%s Your unban appeal has been **accepted**. You are now unbanned!",
				emoji.Render(h.cfg.Emojis, "accept", "✅")),
		})
		h.publish("accepted", map[string]interface{}{"channel": channel.ID, "staff": i.Member.User.ID})
		return
	}

	h.send(s, channel.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("%s Your unban appeal has been **rejected**. Please review the rules and try again later.",
			emoji.Render(h.cfg.Emojis, "reject", "❌")),
	})

	h.followUp(s, i, &discordgo.WebhookParams{
		Content: fmt.Sprintf("%s Click the delete button if you want to delete this appeal.", emoji.Render(h.cfg.Emojis, "delete", "🗑️")),
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "delete_ticket",
					Label:    "Delete",
					Emoji:    emoji.Component(h.cfg.Emojis, "delete", "🗑️"),
					Style:    discordgo.DangerButton,
				},
			}},
		},
	})

	h.publish("rejected", map[string]interface{}{"channel": channel.ID, "staff": i.Member.User.ID})
}

// initialButtons are the controls attached to a fresh case summary.
func (h *Handler) initialButtons(kind types.CaseKind) []discordgo.MessageComponent {
	if kind == types.KindUnban {
		return []discordgo.MessageComponent{h.staffDecisionButton()}
	}
	return []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: "close_ticket",
			Label:    "Close",
			Emoji:    emoji.Component(h.cfg.Emojis, "close", "🔒"),
			Style:    discordgo.DangerButton,
		},
	}
}

func (h *Handler) staffDecisionButton() discordgo.MessageComponent {
	return discordgo.Button{
		CustomID: "unban_request_staff",
		Label:    "Unban Request",
		Emoji:    emoji.Parse(appealBookEmoji),
		Style:    discordgo.PrimaryButton,
	}
}

func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("cases: defer update: %v", err)
	}
}

func (h *Handler) send(s *discordgo.Session, channelID string, msg *discordgo.MessageSend) {
	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		log.Printf("cases: send message in %s: %v", channelID, err)
	}
}

func (h *Handler) followUp(s *discordgo.Session, i *discordgo.InteractionCreate, params *discordgo.WebhookParams) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		log.Printf("cases: follow up: %v", err)
	}
}
