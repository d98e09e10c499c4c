package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is loaded once at process start. Guild, category, role and
// emoji identifiers live in a JSON file; secrets and connection
// parameters come from the environment with file values as fallback.
type Config struct {
	GuildID string `json:"guildId"`

	TicketCategoryID string `json:"ticketCategoryId"`
	ApplyCategoryID  string `json:"applyCategoryId"`
	UnbanCategoryID  string `json:"unbanCategoryId"`

	ClosedCategoryID      string `json:"closedCategoryId"`
	ClosedApplyCategoryID string `json:"closedApplyCategoryId"`
	ClosedUnbanCategoryID string `json:"closedUnbanCategoryId"`

	UnbanAcceptedCategoryID string `json:"unbanAcceptedCategoryId"`
	UnbanRejectedCategoryID string `json:"unbanRejectedCategoryId"`

	AdminRoleID     string `json:"adminRoleId"`
	ModeratorRoleID string `json:"moderatorRoleId"`

	// Staff positions offered on the application menu. Channel names
	// starting with one of these are recognized as applications.
	ApplyPositions []string `json:"applyPositions"`

	Emojis map[string]string `json:"emojis"`

	CounterFile string `json:"counterFile"`

	Token      string `json:"token"`
	MySQLDSN   string `json:"mysqlDsn"`
	RedisURL   string `json:"redisUrl"`
	StatusAddr string `json:"statusAddr"`
}

// Load reads the config file named by SUPPORTBOT_CONFIG (default
// config.json) and applies environment overrides.
func Load() (Config, error) {
	path := os.Getenv("SUPPORTBOT_CONFIG")
	if path == "" {
		path = "config.json"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Token = getenv("DISCORD_TOKEN", cfg.Token)
	cfg.MySQLDSN = getenv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
	cfg.StatusAddr = getenv("STATUS_ADDR", cfg.StatusAddr)

	if cfg.Token == "" {
		return Config{}, fmt.Errorf("discord token not set in %s or DISCORD_TOKEN", path)
	}
	if cfg.GuildID == "" {
		return Config{}, fmt.Errorf("guildId not set in %s", path)
	}

	if cfg.CounterFile == "" {
		cfg.CounterFile = "tickets.json"
	}
	if cfg.StatusAddr == "" {
		cfg.StatusAddr = "127.0.0.1:8090"
	}
	if len(cfg.ApplyPositions) == 0 {
		cfg.ApplyPositions = []string{"moderator", "developer", "builder", "media"}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
