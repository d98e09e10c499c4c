// Package cases is the lifecycle controller for support channels. A
// case is one private channel created from a panel interaction: a
// support ticket, a staff application or an unban appeal. The channel
// itself carries the state: its name encodes kind and sequence number,
// a "closed-" prefix marks closed cases, and the channel topic holds
// the requester's user ID.
package cases

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/emberpeak/supportbot/src/bot/components/counter"
	"github.com/emberpeak/supportbot/src/bot/components/punishments"
	botconfig "github.com/emberpeak/supportbot/src/bot/config"
	"github.com/emberpeak/supportbot/src/bot/data"
	"github.com/emberpeak/supportbot/src/bot/types"
)

// deleteGraceDelay is how long a channel lives after the delete button
// is pressed, so the acknowledgement can still render.
const deleteGraceDelay = 5 * time.Second

// PunishmentSource is the read-only view of the moderation database
// used to enrich appeal channels.
type PunishmentSource interface {
	Available() bool
	Lookup(banID string) (*types.Punishment, error)
	CountBans(name string) (int64, error)
	RecentBans(name string, limit int) []punishments.BanSummary
}

type Config struct {
	Cfg         botconfig.Config
	Counters    *counter.Store
	Punishments PunishmentSource
	Redis       *redis.Client
}

type Handler struct {
	cfg         botconfig.Config
	counters    *counter.Store
	punishments PunishmentSource
	rdb         *redis.Client

	mu           sync.Mutex
	kinds        map[string]types.CaseKind
	deleteTimers map[string]*time.Timer
}

func NewHandler(config Config) *Handler {
	return &Handler{
		cfg:          config.Cfg,
		counters:     config.Counters,
		punishments:  config.Punishments,
		rdb:          config.Redis,
		kinds:        make(map[string]types.CaseKind),
		deleteTimers: make(map[string]*time.Timer),
	}
}

// HandleInteraction routes every component and modal interaction the
// bot receives.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		d := i.MessageComponentData()
		switch d.CustomID {
		case "ticket_select":
			h.showCaseModal(s, i, types.KindTicket, firstValue(d.Values))
		case "apply_select":
			h.showCaseModal(s, i, types.KindApply, firstValue(d.Values))
		case "unban_request_user":
			h.showCaseModal(s, i, types.KindUnban, "")
		default:
			h.handleButton(s, i, d.CustomID)
		}
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(s, i)
	}
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// rememberKind records which kind a channel belongs to so later
// transitions don't have to guess from the name.
func (h *Handler) rememberKind(channelID string, kind types.CaseKind) {
	h.mu.Lock()
	h.kinds[channelID] = kind
	h.mu.Unlock()
}

// kindOf resolves a channel's kind, preferring the index populated at
// creation and falling back to name-prefix matching for channels that
// predate the current process.
func (h *Handler) kindOf(channelID, name string) types.CaseKind {
	h.mu.Lock()
	kind, ok := h.kinds[channelID]
	h.mu.Unlock()
	if ok {
		return kind
	}
	return KindFromName(BaseName(name), h.cfg.ApplyPositions)
}

// scheduleDelete arms (or re-arms) the grace timer for a channel. The
// timer is kept so a reopen can cancel it; the delete itself is
// fire-and-forget.
func (h *Handler) scheduleDelete(s *discordgo.Session, channelID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.deleteTimers[channelID]; ok {
		t.Stop()
	}
	h.deleteTimers[channelID] = time.AfterFunc(deleteGraceDelay, func() {
		h.mu.Lock()
		delete(h.deleteTimers, channelID)
		delete(h.kinds, channelID)
		h.mu.Unlock()

		if _, err := s.ChannelDelete(channelID); err != nil {
			log.Printf("cases: delete channel %s: %v", channelID, err)
		}
	})
}

func (h *Handler) cancelDelete(channelID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.deleteTimers[channelID]; ok {
		t.Stop()
		delete(h.deleteTimers, channelID)
	}
}

// publish emits a case lifecycle event to the Redis stream when one is
// configured. Event delivery is best effort.
func (h *Handler) publish(event string, fields map[string]interface{}) {
	if h.rdb == nil {
		return
	}
	payload := map[string]interface{}{"event": event, "time": time.Now().Unix()}
	for k, v := range fields {
		payload[k] = v
	}
	if err := data.PublishCaseEvent(context.Background(), h.rdb, payload); err != nil {
		log.Printf("cases: publish %s event: %v", event, err)
	}
}

func (h *Handler) isStaff(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	return HasStaffRole(member.Roles, h.cfg.AdminRoleID, h.cfg.ModeratorRoleID)
}

// HasStaffRole reports whether any of the member's roles is the admin
// or moderator role.
func HasStaffRole(roles []string, adminRoleID, moderatorRoleID string) bool {
	for _, r := range roles {
		if r == adminRoleID || r == moderatorRoleID {
			return true
		}
	}
	return false
}
