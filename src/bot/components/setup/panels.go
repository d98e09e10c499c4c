// Package setup posts the public panels users interact with: the
// ticket and application select menus and the unban appeal button.
package setup

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/emberpeak/supportbot/src/bot/config"
	"github.com/emberpeak/supportbot/src/bot/emoji"
)

const (
	colorPurple = 0x9B59B6
	colorGreen  = 0x57F287
	colorRed    = 0xED4245
)

const appealBookEmoji = "<:book2:1420129491757436979>"

type Handler struct {
	cfg config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// HandleMessage reacts to the !setup-* admin commands by posting the
// matching panel into the current channel.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	switch m.Content {
	case "!setup-tickets":
		h.post(s, m.ChannelID, h.ticketPanel())
	case "!setup-apply":
		h.post(s, m.ChannelID, h.applyPanel())
	case "!setup-unban":
		h.post(s, m.ChannelID, h.unbanPanel())
	}
}

func (h *Handler) post(s *discordgo.Session, channelID string, msg *discordgo.MessageSend) {
	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		log.Printf("setup: post panel in %s: %v", channelID, err)
	}
}

func (h *Handler) ticketPanel() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       emoji.Render(h.cfg.Emojis, "ticket", "🎫") + " Ticket System",
		Description: "Need support or want to ask a question?\nSelect the subject below to create a ticket.",
		Color:       colorPurple,
	}

	menu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    "ticket_select",
		Placeholder: "Choose a category...",
		Options: []discordgo.SelectMenuOption{
			{
				Label:       "Technical Problem",
				Value:       "tech",
				Description: "Help with a technical issue",
				Emoji:       emoji.Component(h.cfg.Emojis, "technical", "🔧"),
			},
			{
				Label:       "Player Report",
				Value:       "report",
				Description: "Report a player",
				Emoji:       emoji.Component(h.cfg.Emojis, "report", "🚨"),
			},
			{
				Label:       "Bug Report",
				Value:       "bug",
				Description: "Report a bug",
				Emoji:       emoji.Component(h.cfg.Emojis, "bug", "🐛"),
			},
			{
				Label:       "Other",
				Value:       "other",
				Description: "Anything else",
				Emoji:       emoji.Component(h.cfg.Emojis, "other", "❓"),
			},
		},
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{menu}},
		},
	}
}

func (h *Handler) applyPanel() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       emoji.Render(h.cfg.Emojis, "apply", "📝") + " Applications",
		Description: "Want to apply for our team? Please choose a position below.",
		Color:       colorGreen,
	}

	menu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    "apply_select",
		Placeholder: "Select a position...",
		Options: []discordgo.SelectMenuOption{
			{
				Label:       "Moderator",
				Value:       "moderator",
				Description: "Apply as Moderator",
				Emoji:       emoji.Component(h.cfg.Emojis, "moderator", "🛡️"),
			},
			{
				Label:       "Developer",
				Value:       "developer",
				Description: "Apply as Developer",
				Emoji:       emoji.Component(h.cfg.Emojis, "developer", "💻"),
			},
			{
				Label:       "Builder",
				Value:       "builder",
				Description: "Apply as Builder",
				Emoji:       emoji.Component(h.cfg.Emojis, "builder", "🧱"),
			},
			{
				Label:       "Media / Famous",
				Value:       "media",
				Description: "Apply as Media/Famous",
				Emoji:       emoji.Component(h.cfg.Emojis, "media", "📺"),
			},
		},
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{menu}},
		},
	}
}

func (h *Handler) unbanPanel() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: emoji.Render(h.cfg.Emojis, "unban", "🔒") + " Unban Appeal",
		Description: "**You were banned and want to appeal for an unban?**\n" +
			"If you have been banned from the Server, you can appeal using the button below. " +
			"Please enter your Ban ID (not your Minecraft name) when creating an appeal.\n\n" +
			"**How to find your Ban ID:**\n" +
			"- Check your ban message in-game\n" +
			"- Ask a staff member for your Ban ID\n" +
			"- The Ban ID is a number that identifies your specific ban\n\n" +
			"Ensure to be truthful and honest about your appeal in order to increase your " +
			"chances of getting unbanned. Lying to Staff is strictly prohibited!",
		Color: colorRed,
	}

	button := discordgo.Button{
		CustomID: "unban_request_user",
		Label:    "Appeal",
		Emoji:    emoji.Parse(appealBookEmoji),
		Style:    discordgo.PrimaryButton,
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{button}},
		},
	}
}
