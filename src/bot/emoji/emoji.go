// Package emoji resolves the configurable emoji map into the forms
// Discord wants: inline strings for message text and ComponentEmoji
// values for buttons and menu options.
package emoji

import (
	"regexp"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

var customPattern = regexp.MustCompile(`<:(\w+):(\d+)>`)

// Render returns the configured emoji for key as inline message text.
// Unconfigured keys use the fallback; configured values that are
// neither a plain unicode emoji nor a <:name:id> custom emoji render
// as "❓" so a broken config is visible instead of silently dropped.
func Render(emojis map[string]string, key, fallback string) string {
	val := emojis[key]
	if val == "" {
		return fallback
	}
	if utf8.RuneCountInString(val) <= 2 {
		return val
	}
	if customPattern.MatchString(val) {
		return val
	}
	return "❓"
}

// Component returns the configured emoji for key in component form,
// with the same fallback rules as Render.
func Component(emojis map[string]string, key, fallback string) *discordgo.ComponentEmoji {
	val := emojis[key]
	if val == "" {
		val = fallback
	}
	return Parse(val)
}

// Parse converts an emoji string into a ComponentEmoji. Short strings
// are unicode emoji; <:name:id> is a custom guild emoji; anything else
// falls back to "❓".
func Parse(val string) *discordgo.ComponentEmoji {
	if val == "" {
		return &discordgo.ComponentEmoji{Name: "❓"}
	}
	if utf8.RuneCountInString(val) <= 2 {
		return &discordgo.ComponentEmoji{Name: val}
	}
	if m := customPattern.FindStringSubmatch(val); m != nil {
		return &discordgo.ComponentEmoji{Name: m[1], ID: m[2]}
	}
	return &discordgo.ComponentEmoji{Name: "❓"}
}
