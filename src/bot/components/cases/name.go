package cases

import (
	"fmt"
	"strings"

	"github.com/emberpeak/supportbot/src/bot/types"
)

const closedMarker = "closed-"

// BuildChannelName composes the channel name for a new case:
// <prefix>-<NNN>-<subject>.
func BuildChannelName(prefix, seq, subject string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, seq, subject)
}

// BaseName strips the closed marker from a channel name, however many
// times it has been applied.
func BaseName(name string) string {
	for strings.HasPrefix(name, closedMarker) {
		name = strings.TrimPrefix(name, closedMarker)
	}
	return name
}

// CloseName prefixes a channel name with the closed marker.
func CloseName(name string) string {
	return closedMarker + BaseName(name)
}

// KindFromName derives the case kind from a channel's base name.
// Appeals are prefixed "unban", applications with one of the
// configured positions, and everything else is a ticket. A ticket
// whose subject happens to start with a position keyword would be
// misread here; channels created by this process are covered by the
// kind index instead.
func KindFromName(base string, applyPositions []string) types.CaseKind {
	if strings.HasPrefix(base, "unban") {
		return types.KindUnban
	}
	for _, pos := range applyPositions {
		if strings.HasPrefix(base, pos) {
			return types.KindApply
		}
	}
	return types.KindTicket
}

// openCategory returns the configured open-case category for a kind.
func (h *Handler) openCategory(kind types.CaseKind) string {
	switch kind {
	case types.KindApply:
		return h.cfg.ApplyCategoryID
	case types.KindUnban:
		return h.cfg.UnbanCategoryID
	default:
		return h.cfg.TicketCategoryID
	}
}

// closedCategory returns the configured closed-case category for a kind.
func (h *Handler) closedCategory(kind types.CaseKind) string {
	switch kind {
	case types.KindApply:
		return h.cfg.ClosedApplyCategoryID
	case types.KindUnban:
		return h.cfg.ClosedUnbanCategoryID
	default:
		return h.cfg.ClosedCategoryID
	}
}

// channelPrefix maps a case kind and menu selection to the channel
// name prefix. "tech" tickets are historically named "problem".
func channelPrefix(kind types.CaseKind, category string) string {
	switch kind {
	case types.KindUnban:
		return "unban"
	case types.KindTicket:
		if category == "tech" {
			return "problem"
		}
		return category
	default:
		return category
	}
}
