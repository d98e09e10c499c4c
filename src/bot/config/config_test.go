package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
  "guildId": "guild-1",
  "ticketCategoryId": "cat-open-tickets",
  "applyCategoryId": "cat-open-apply",
  "unbanCategoryId": "cat-open-unban",
  "closedCategoryId": "cat-closed-tickets",
  "closedApplyCategoryId": "cat-closed-apply",
  "closedUnbanCategoryId": "cat-closed-unban",
  "unbanAcceptedCategoryId": "cat-accepted",
  "unbanRejectedCategoryId": "cat-rejected",
  "adminRoleId": "role-admin",
  "moderatorRoleId": "role-mod",
  "token": "file-token",
  "emojis": {"ticket": "🎫"}
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("SUPPORTBOT_CONFIG", writeConfig(t, sampleConfig))
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("MYSQL_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "guild-1", cfg.GuildID)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "cat-rejected", cfg.UnbanRejectedCategoryID)
	assert.Equal(t, "🎫", cfg.Emojis["ticket"])

	// Defaults kick in for everything optional.
	assert.Equal(t, "tickets.json", cfg.CounterFile)
	assert.Equal(t, "127.0.0.1:8090", cfg.StatusAddr)
	assert.Equal(t, []string{"moderator", "developer", "builder", "media"}, cfg.ApplyPositions)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SUPPORTBOT_CONFIG", writeConfig(t, sampleConfig))
	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("MYSQL_DSN", "user:pass@tcp(127.0.0.1:3306)/bans")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "user:pass@tcp(127.0.0.1:3306)/bans", cfg.MySQLDSN)
}

func TestLoadRequiresTokenAndGuild(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("SUPPORTBOT_CONFIG", writeConfig(t, `{"guildId": "guild-1"}`))
	_, err := Load()
	assert.ErrorContains(t, err, "token")

	t.Setenv("SUPPORTBOT_CONFIG", writeConfig(t, `{"token": "tok"}`))
	_, err = Load()
	assert.ErrorContains(t, err, "guildId")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SUPPORTBOT_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
	_, err := Load()
	assert.Error(t, err)
}
