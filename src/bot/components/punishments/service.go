package punishments

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/emberpeak/supportbot/src/bot/types"
)

// ErrNotFound means the ban ID has no matching punishment row, as
// opposed to the lookup itself failing.
var ErrNotFound = errors.New("punishment not found")

// banClassTypes are the punishment types counted as bans.
var banClassTypes = []string{"BAN", "TEMP_BAN", "PERMANENT_BAN"}

// BanSummary is one entry of a player's recent ban history.
type BanSummary struct {
	Reason   string
	Type     string
	Duration string
}

// Service answers read-only punishment queries against the moderation
// database. A nil db is a legal state (the bot runs with degraded
// appeal embeds); callers check Available first.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Available() bool {
	return s != nil && s.db != nil
}

// Lookup fetches the punishment row for a ban ID.
func (s *Service) Lookup(banID string) (*types.Punishment, error) {
	var p types.Punishment
	err := s.db.Where("id = ?", banID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup punishment %s: %w", banID, err)
	}
	return &p, nil
}

// CountBans counts ban-class punishments for a player. The history
// table is preferred; deployments without it fall back to the live
// punishments table.
func (s *Service) CountBans(name string) (int64, error) {
	var total int64
	err := s.db.Model(&types.PunishmentRecord{}).
		Where("name = ? AND punishmentType IN ?", name, banClassTypes).
		Count(&total).Error
	if err == nil {
		return total, nil
	}

	err = s.db.Model(&types.Punishment{}).
		Where("name = ? AND punishmentType IN ?", name, banClassTypes).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count bans for %s: %w", name, err)
	}
	return total, nil
}

// RecentBans returns up to limit of the player's most recent bans,
// newest first. Failures degrade to an empty history rather than
// blocking appeal creation.
func (s *Service) RecentBans(name string, limit int) []BanSummary {
	var rows []types.PunishmentRecord
	err := s.db.
		Where("name = ? AND punishmentType IN ?", name, banClassTypes).
		Order("start DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		log.Printf("punishments: recent bans for %s: %v", name, err)
		return nil
	}

	summaries := make([]BanSummary, 0, len(rows))
	for _, row := range rows {
		summary := BanSummary{
			Reason:   row.Reason,
			Type:     row.PunishmentType,
			Duration: Duration(row.Start, row.End, row.PunishmentType),
		}
		if summary.Reason == "" {
			summary.Reason = "Unknown"
		}
		if summary.Type == "" {
			summary.Type = "Unknown"
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
