package cases

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/emberpeak/supportbot/src/bot/emoji"
	"github.com/emberpeak/supportbot/src/bot/types"
)

const (
	colorPurple          = 0x9B59B6
	colorGreen           = 0x57F287
	colorDarkButNotBlack = 0x2C2F33
)

var errParentCategoryMissing = errors.New("parent category missing")

// handleModalSubmit turns a submitted form into a case channel. The
// deferred flag tracks whether the interaction has been acknowledged
// yet, so a failure is reported exactly once.
func (h *Handler) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	kind, category, ok := parseModalCustomID(data.CustomID)
	if !ok {
		return
	}

	deferred := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}) == nil

	channel, err := h.createCase(s, i, data, kind, category)
	if err != nil {
		log.Printf("cases: create %s case: %v", kind, err)
		failure := "An error occurred while creating your request. Please try again later."
		if deferred {
			_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &failure})
		} else {
			_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{Content: failure, Flags: discordgo.MessageFlagsEphemeral},
			})
		}
		return
	}

	label := map[types.CaseKind]string{
		types.KindTicket: "Ticket",
		types.KindApply:  "Application",
		types.KindUnban:  "Unban appeal",
	}[kind]
	success := fmt.Sprintf("✅ %s created: <#%s>", label, channel.ID)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &success}); err != nil {
		log.Printf("cases: confirm %s case: %v", kind, err)
	}
}

func (h *Handler) createCase(s *discordgo.Session, i *discordgo.InteractionCreate,
	data discordgo.ModalSubmitInteractionData, kind types.CaseKind, category string) (*discordgo.Channel, error) {

	user := i.Member.User

	var subject, issue, banID string
	if kind == types.KindUnban {
		banID = modalValue(data, "ban_id")
		issue = modalValue(data, "reason")
		subject = "BanID-" + banID
	} else {
		subject = modalValue(data, "mc_name")
		issue = modalValue(data, "issue")
	}

	// Counter moves forward even if channel creation fails below;
	// a gap in the sequence is preferred over a reused number.
	seq, n := h.counters.Next(kind)

	parentID := h.openCategory(kind)
	if parentID == "" {
		return nil, fmt.Errorf("%w: no category configured for %s", errParentCategoryMissing, kind)
	}
	if _, err := s.Channel(parentID); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errParentCategoryMissing, parentID, err)
	}

	prefix := channelPrefix(kind, category)

	channel, err := s.GuildChannelCreateComplex(h.cfg.GuildID, discordgo.GuildChannelCreateData{
		Name:                 BuildChannelName(prefix, seq, subject),
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                user.ID,
		ParentID:             parentID,
		PermissionOverwrites: h.caseOverwrites(user.ID, s.State.User.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}

	var embed *discordgo.MessageEmbed
	switch kind {
	case types.KindUnban:
		var actualName string
		embed, actualName = h.appealEmbed(banID, issue)
		if actualName != "" {
			newName := BuildChannelName(prefix, seq, actualName)
			if _, err := s.ChannelEdit(channel.ID, &discordgo.ChannelEdit{Name: newName}); err != nil {
				log.Printf("cases: rename appeal channel %s: %v", channel.ID, err)
			}
		}
	case types.KindApply:
		embed = h.applicationEmbed(data, subject, category, issue)
	default:
		embed = h.ticketEmbed(subject, category, issue)
	}

	welcome := &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s> Welcome!", user.ID),
		Embeds:  []*discordgo.MessageEmbed{embed},
	}
	if buttons := h.initialButtons(kind); len(buttons) > 0 {
		welcome.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}
	if _, err := s.ChannelMessageSendComplex(channel.ID, welcome); err != nil {
		log.Printf("cases: post summary in %s: %v", channel.ID, err)
	}

	h.rememberKind(channel.ID, kind)

	caseID := uuid.NewString()
	log.Printf("cases: created %s #%03d (%s) channel %s for %s", kind, n, caseID, channel.ID, user.ID)
	h.publish("created", map[string]interface{}{
		"case_id": caseID,
		"kind":    string(kind),
		"channel": channel.ID,
		"user":    user.ID,
		"seq":     n,
	})

	return channel, nil
}

// caseOverwrites hides the channel from everyone except the requester,
// the staff roles and the bot itself.
func (h *Handler) caseOverwrites(ownerID, botID string) []*discordgo.PermissionOverwrite {
	view := int64(discordgo.PermissionViewChannel)
	viewSend := view | int64(discordgo.PermissionSendMessages)

	return []*discordgo.PermissionOverwrite{
		{ID: h.cfg.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: view},
		{ID: ownerID, Type: discordgo.PermissionOverwriteTypeMember, Allow: viewSend},
		{ID: h.cfg.AdminRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: viewSend},
		{ID: h.cfg.ModeratorRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: viewSend},
		{ID: botID, Type: discordgo.PermissionOverwriteTypeMember, Allow: viewSend | int64(discordgo.PermissionManageChannels)},
	}
}

func (h *Handler) ticketEmbed(subject, category, issue string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: colorPurple,
		Title: emoji.Render(h.cfg.Emojis, "ticket", "🎫") + " Support Ticket",
		Fields: []*discordgo.MessageEmbedField{
			h.field("minecraftName", "👤", "Minecraft Name", subject, true),
			h.field("category", "📂", "Category", category, true),
			h.field("issue", "📝", "Issue / Concern", issue, false),
		},
	}
}

func (h *Handler) applicationEmbed(data discordgo.ModalSubmitInteractionData, subject, position, issue string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: colorGreen,
		Title: emoji.Render(h.cfg.Emojis, "apply", "📝") + " Application",
		Fields: []*discordgo.MessageEmbedField{
			h.field("minecraftName", "👤", "Minecraft Name", subject, true),
			h.field("position", "💼", "Position", position, true),
			h.field("applicationText", "📋", "Application Text", issue, false),
		},
	}

	if position == "media" {
		embed.Fields = append(embed.Fields,
			h.field("twitch", "📺", "Twitch", orDefault(modalValue(data, "twitch"), "Not provided"), true),
			h.field("youtube", "🎥", "YouTube", orDefault(modalValue(data, "youtube"), "Not provided"), true),
			h.field("tiktok", "📱", "TikTok", orDefault(modalValue(data, "tiktok"), "Not provided"), true),
		)
	}

	return embed
}

// field builds a code-fenced embed field with a configurable emoji in
// the name.
func (h *Handler) field(emojiKey, fallback, name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   emoji.Render(h.cfg.Emojis, emojiKey, fallback) + " " + name,
		Value:  fenced(value),
		Inline: inline,
	}
}

func fenced(value string) string {
	if value == "" {
		value = "Unknown"
	}
	return "```" + value + "```"
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func formatBanID(id int64) string {
	if id == 0 {
		return "Unknown"
	}
	return strconv.FormatInt(id, 10)
}
