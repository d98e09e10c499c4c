package punishments

import (
	"fmt"
	"strconv"
	"time"
)

const (
	msPerDay    = 24 * 60 * 60 * 1000
	msPerHour   = 60 * 60 * 1000
	msPerMinute = 60 * 1000
)

// Duration renders the length of a punishment. Start and end are epoch
// milliseconds as strings; "0" and "permanent" mark a ban that never
// expires. The composed string lists non-zero day/hour/minute parts,
// always including minutes when no larger unit fired.
func Duration(start, end, punishmentType string) string {
	if punishmentType == "BAN" || punishmentType == "PERMANENT_BAN" {
		return "Permanent"
	}

	if start == "" || end == "" || end == "0" || end == "permanent" {
		return "Permanent"
	}

	startMs, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return "Unknown"
	}
	endMs, err := strconv.ParseInt(end, 10, 64)
	if err != nil {
		return "Unknown"
	}

	durationMs := endMs - startMs

	days := durationMs / msPerDay
	hours := (durationMs % msPerDay) / msPerHour
	minutes := (durationMs % msPerHour) / msPerMinute

	result := ""
	if days > 0 {
		result += fmt.Sprintf("%dd", days)
	}
	if hours > 0 {
		if result != "" {
			result += ", "
		}
		result += fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 || result == "" {
		if result != "" {
			result += ", "
		}
		result += fmt.Sprintf("%dm", minutes)
	}

	if result == "" {
		return "Less than 1m"
	}
	return result
}

// Rank labels the n-th ban of a player ("1st Ban", "4th Ban", ...).
func Rank(totalBans int64) string {
	switch totalBans {
	case 1:
		return "1st Ban"
	case 2:
		return "2nd Ban"
	case 3:
		return "3rd Ban"
	default:
		return fmt.Sprintf("%dth Ban", totalBans)
	}
}

// FormatBanDate renders an epoch-millisecond string as dd.mm.yyyy hh:mm
// in local time, or "Unknown" when the value is missing or malformed.
func FormatBanDate(epochMs string) string {
	if epochMs == "" {
		return "Unknown"
	}
	ms, err := strconv.ParseInt(epochMs, 10, 64)
	if err != nil {
		return "Unknown"
	}
	return time.UnixMilli(ms).Format("02.01.2006 15:04")
}
