package cases

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/emberpeak/supportbot/src/bot/types"
)

// Modal custom IDs carry the menu selection so the submit handler has
// no shared mutable state to consult: "<kind>_modal:<category>".

func modalCustomID(kind types.CaseKind, category string) string {
	if kind == types.KindUnban {
		return "unban_modal"
	}
	return fmt.Sprintf("%s_modal:%s", kind, category)
}

// parseModalCustomID reverses modalCustomID. The bool reports whether
// the ID belongs to a case modal at all.
func parseModalCustomID(id string) (types.CaseKind, string, bool) {
	if id == "unban_modal" {
		return types.KindUnban, "", true
	}
	kindPart, category, _ := strings.Cut(id, ":")
	switch kindPart {
	case "ticket_modal":
		return types.KindTicket, category, true
	case "apply_modal":
		return types.KindApply, category, true
	}
	return "", "", false
}

// showCaseModal presents the submission form for a case kind. For
// media applications three optional social link fields are appended.
func (h *Handler) showCaseModal(s *discordgo.Session, i *discordgo.InteractionCreate, kind types.CaseKind, category string) {
	var title string
	var rows []discordgo.MessageComponent

	switch kind {
	case types.KindUnban:
		title = "Unban Appeal"
		rows = []discordgo.MessageComponent{
			inputRow(discordgo.TextInput{
				CustomID:    "ban_id",
				Label:       "Ban ID",
				Style:       discordgo.TextInputShort,
				Required:    true,
				Placeholder: "Enter your Ban ID (e.g., 12345)",
			}),
			inputRow(discordgo.TextInput{
				CustomID:    "reason",
				Label:       "Write your unban appeal here",
				Style:       discordgo.TextInputParagraph,
				Required:    true,
				Placeholder: "Explain why you should be unbanned...",
			}),
		}
	default:
		title = "Create a Ticket"
		issueLabel := "Issue / Concern"
		if kind == types.KindApply {
			title = "Submit Application"
			issueLabel = "Why should we accept you?"
		}
		rows = []discordgo.MessageComponent{
			inputRow(discordgo.TextInput{
				CustomID: "mc_name",
				Label:    "Minecraft Name",
				Style:    discordgo.TextInputShort,
				Required: true,
			}),
			inputRow(discordgo.TextInput{
				CustomID: "issue",
				Label:    issueLabel,
				Style:    discordgo.TextInputParagraph,
				Required: true,
			}),
		}
		if kind == types.KindApply && category == "media" {
			for _, social := range []struct{ id, label string }{
				{"twitch", "Twitch Link (optional)"},
				{"youtube", "YouTube Link (optional)"},
				{"tiktok", "TikTok Link (optional)"},
			} {
				rows = append(rows, inputRow(discordgo.TextInput{
					CustomID: social.id,
					Label:    social.label,
					Style:    discordgo.TextInputShort,
				}))
			}
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modalCustomID(kind, category),
			Title:      title,
			Components: rows,
		},
	})
	if err != nil {
		log.Printf("cases: show %s modal: %v", kind, err)
	}
}

func inputRow(input discordgo.TextInput) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
}

// modalValue pulls a submitted text input out of the modal data,
// returning "" when the field was not part of the form.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
