package cases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberpeak/supportbot/src/bot/components/punishments"
	botconfig "github.com/emberpeak/supportbot/src/bot/config"
	"github.com/emberpeak/supportbot/src/bot/types"
)

type stubPunishments struct {
	available bool
	record    *types.Punishment
	lookupErr error
	total     int64
	history   []punishments.BanSummary
}

func (s *stubPunishments) Available() bool { return s.available }

func (s *stubPunishments) Lookup(banID string) (*types.Punishment, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.record, nil
}

func (s *stubPunishments) CountBans(name string) (int64, error) { return s.total, nil }

func (s *stubPunishments) RecentBans(name string, limit int) []punishments.BanSummary {
	if len(s.history) > limit {
		return s.history[:limit]
	}
	return s.history
}

func newTestHandler(src PunishmentSource) *Handler {
	return NewHandler(Config{
		Cfg: botconfig.Config{
			AdminRoleID:     "admin-role",
			ModeratorRoleID: "mod-role",
			ApplyPositions:  applyPositions,
		},
		Punishments: src,
	})
}

func TestHasStaffRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"no roles", nil, false},
		{"unrelated roles", []string{"member", "vip"}, false},
		{"admin", []string{"member", "admin-role"}, true},
		{"moderator", []string{"mod-role"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasStaffRole(tt.roles, "admin-role", "mod-role"))
		})
	}
}

func TestParseModalCustomIDRoundTrip(t *testing.T) {
	tests := []struct {
		kind     types.CaseKind
		category string
	}{
		{types.KindTicket, "tech"},
		{types.KindTicket, "report"},
		{types.KindApply, "media"},
		{types.KindUnban, ""},
	}

	for _, tt := range tests {
		kind, category, ok := parseModalCustomID(modalCustomID(tt.kind, tt.category))
		require.True(t, ok)
		assert.Equal(t, tt.kind, kind)
		assert.Equal(t, tt.category, category)
	}
}

func TestParseModalCustomIDRejectsOthers(t *testing.T) {
	for _, id := range []string{"close_ticket", "ticket_select", "", "something_modal:x"} {
		_, _, ok := parseModalCustomID(id)
		assert.False(t, ok, id)
	}
}

func TestKindOfPrefersIndexOverPrefix(t *testing.T) {
	h := newTestHandler(&stubPunishments{})

	// A ticket whose subject starts with a position keyword would be
	// misread by prefix matching alone.
	h.rememberKind("chan-1", types.KindTicket)
	assert.Equal(t, types.KindTicket, h.kindOf("chan-1", "other-001-mediafan"))

	// Unknown channels fall back to the name.
	assert.Equal(t, types.KindApply, h.kindOf("chan-2", "media-001-Streamer"))
	assert.Equal(t, types.KindUnban, h.kindOf("chan-3", "closed-unban-002-BanID-9"))
}

func TestAppealEmbedWithoutDatabase(t *testing.T) {
	h := newTestHandler(&stubPunishments{available: false})

	embed, actualName := h.appealEmbed("12345", "please unban me")

	assert.Empty(t, actualName)
	require.Len(t, embed.Fields, 4)
	assert.Contains(t, embed.Fields[0].Name, "Appeal Type")
	assert.Contains(t, embed.Fields[1].Value, "please unban me")
	assert.Contains(t, embed.Fields[2].Value, "Database connection not available")
	assert.Contains(t, embed.Fields[3].Value, "Unknown (No DB connection)")
}

func TestAppealEmbedBanIDNotFound(t *testing.T) {
	h := newTestHandler(&stubPunishments{available: true, lookupErr: punishments.ErrNotFound})

	embed, actualName := h.appealEmbed("99999", "wasn't me")

	assert.Empty(t, actualName)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "❌ Ban ID Not Found", embed.Fields[2].Name)
	assert.Contains(t, embed.Fields[2].Value, "No ban found with ID: 99999")
	assert.Contains(t, embed.Fields[3].Value, "Unknown (ID not found)")
}

func TestAppealEmbedDatabaseError(t *testing.T) {
	h := newTestHandler(&stubPunishments{available: true, lookupErr: errors.New("connection reset")})

	embed, actualName := h.appealEmbed("123", "hello")

	assert.Empty(t, actualName)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "❌ Database Error", embed.Fields[2].Name)
}

func TestAppealEmbedWithRecord(t *testing.T) {
	h := newTestHandler(&stubPunishments{
		available: true,
		record: &types.Punishment{
			ID:             321,
			Name:           "Herobrine",
			Reason:         "x-ray",
			PunishmentType: "TEMP_BAN",
			Start:          "0",
			End:            "183600000",
			Operator:       "console",
		},
		total: 2,
		history: []punishments.BanSummary{
			{Reason: "x-ray", Type: "TEMP_BAN", Duration: "2d, 3h"},
			{Reason: "grief", Type: "BAN", Duration: "Permanent"},
		},
	})

	embed, actualName := h.appealEmbed("321", "sorry")

	assert.Equal(t, "Herobrine", actualName)

	values := ""
	names := ""
	for _, f := range embed.Fields {
		names += f.Name + "\n"
		values += f.Value + "\n"
	}
	assert.Contains(t, values, "321")
	assert.Contains(t, values, "Herobrine")
	assert.Contains(t, values, "x-ray")
	assert.Contains(t, values, "console")
	assert.Contains(t, values, "2nd Ban (Total: 2)")
	assert.Contains(t, values, "TEMP_BAN (2d, 3h)")
	assert.Contains(t, names, "Last 2 Bans")
	assert.Contains(t, values, "**1.** x-ray (TEMP_BAN - 2d, 3h)")
}

func TestInitialButtonsPerKind(t *testing.T) {
	h := newTestHandler(&stubPunishments{})

	ticketButtons := h.initialButtons(types.KindTicket)
	require.Len(t, ticketButtons, 1)

	unbanButtons := h.initialButtons(types.KindUnban)
	require.Len(t, unbanButtons, 1)
	assert.NotEqual(t, ticketButtons[0], unbanButtons[0])
}
