package cases

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/emberpeak/supportbot/src/bot/components/punishments"
	"github.com/emberpeak/supportbot/src/bot/emoji"
)

// appealEmbed builds the summary embed for an unban appeal, enriched
// with the punishment record behind the submitted ban ID. Every
// database problem degrades to placeholder fields; the appeal channel
// is created either way. The second return value is the player's real
// name when the lookup found one, so the channel can be renamed from
// the BanID placeholder.
func (h *Handler) appealEmbed(banID, issue string) (*discordgo.MessageEmbed, string) {
	embed := &discordgo.MessageEmbed{
		Color: colorDarkButNotBlack,
		Fields: []*discordgo.MessageEmbedField{
			h.field("appealType", "📘", "Appeal Type", "Unban Appeal", false),
			h.field("appealReason", "📗", "Appeal Reason", issue, false),
		},
	}

	if !h.punishments.Available() {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "ℹ️ Database", Value: fenced("Database connection not available")},
			h.field("minecraftName", "👤", "Minecraft Name", "Unknown (No DB connection)", false),
		)
		return embed, ""
	}

	record, err := h.punishments.Lookup(banID)
	if errors.Is(err, punishments.ErrNotFound) {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "❌ Ban ID Not Found", Value: fenced(fmt.Sprintf("No ban found with ID: %s", banID))},
			h.field("minecraftName", "👤", "Minecraft Name", "Unknown (ID not found)", false),
		)
		return embed, ""
	}
	if err != nil {
		log.Printf("cases: fetch ban info for %s: %v", banID, err)
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "❌ Database Error", Value: fenced("Could not retrieve ban information")},
			h.field("minecraftName", "👤", "Minecraft Name", "Unknown (Database error)", false),
		)
		return embed, ""
	}

	banDate := punishments.FormatBanDate(record.Start)

	banEnd := "Permanent"
	if record.End != "" && record.End != "0" && record.End != "permanent" {
		banEnd = punishments.FormatBanDate(record.End)
	}

	banDuration := punishments.Duration(record.Start, record.End, record.PunishmentType)

	totalBans, err := h.punishments.CountBans(record.Name)
	if err != nil {
		log.Printf("cases: count bans for %s: %v", record.Name, err)
	}

	punishmentType := orDefault(record.PunishmentType, "Unknown")
	if record.PunishmentType == "TEMP_BAN" {
		punishmentType += fmt.Sprintf(" (%s)", banDuration)
	}

	embed.Fields = append(embed.Fields,
		h.field("banId", "📔", "Ban ID", formatBanID(record.ID), true),
		h.field("minecraftName", "👤", "Minecraft Name", record.Name, true),
		h.field("banReason", "💣", "Ban Reason", record.Reason, false),
		h.field("bannedBy", "📛", "Banned by", record.Operator, true),
		h.field("bannedOn", "💣", "Banned on", banDate, true),
		h.field("banUntil", "🍎", "Ban until", banEnd, true),
		h.field("banDuration", "⏰", "Ban Duration", banDuration, true),
		h.field("banCount", "🔮", "Ban Count", fmt.Sprintf("%s (Total: %d)", punishments.Rank(totalBans), totalBans), true),
		h.field("punishmentType", "🔍", "Punishment Type", punishmentType, true),
	)

	if history := h.punishments.RecentBans(record.Name, 3); len(history) > 0 {
		text := ""
		for i, ban := range history {
			text += fmt.Sprintf("**%d.** %s (%s - %s)\n", i+1, ban.Reason, ban.Type, ban.Duration)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s Last %d Bans", emoji.Render(h.cfg.Emojis, "lastBans", "📚"), len(history)),
			Value: text,
		})
	}

	return embed, orDefault(record.Name, "Unknown")
}
