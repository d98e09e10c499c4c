package punishments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name           string
		start          string
		end            string
		punishmentType string
		want           string
	}{
		{
			name:           "BAN type is always permanent",
			start:          "0",
			end:            "90000",
			punishmentType: "BAN",
			want:           "Permanent",
		},
		{
			name:           "PERMANENT_BAN type is always permanent",
			start:          "1000",
			end:            "2000",
			punishmentType: "PERMANENT_BAN",
			want:           "Permanent",
		},
		{
			name:           "zero end sentinel",
			start:          "1000",
			end:            "0",
			punishmentType: "TEMP_BAN",
			want:           "Permanent",
		},
		{
			name:           "permanent end sentinel",
			start:          "1000",
			end:            "permanent",
			punishmentType: "TEMP_BAN",
			want:           "Permanent",
		},
		{
			name:           "missing start",
			start:          "",
			end:            "90000",
			punishmentType: "TEMP_BAN",
			want:           "Permanent",
		},
		{
			name:           "missing end",
			start:          "1000",
			end:            "",
			punishmentType: "TEMP_BAN",
			want:           "Permanent",
		},
		{
			name:           "ninety seconds rounds down to one minute",
			start:          "0",
			end:            "90000",
			punishmentType: "TEMP_BAN",
			want:           "1m",
		},
		{
			name:           "days and hours omit zero minutes",
			start:          "0",
			end:            "183600000",
			punishmentType: "TEMP_BAN",
			want:           "2d, 3h",
		},
		{
			name:           "all three components",
			start:          "0",
			end:            "94260000",
			punishmentType: "TEMP_BAN",
			want:           "1d, 2h, 11m",
		},
		{
			name:           "under a minute still shows minutes",
			start:          "0",
			end:            "30000",
			punishmentType: "TEMP_BAN",
			want:           "0m",
		},
		{
			name:           "unparseable start",
			start:          "abc",
			end:            "90000",
			punishmentType: "TEMP_BAN",
			want:           "Unknown",
		},
		{
			name:           "unparseable end",
			start:          "0",
			end:            "soon",
			punishmentType: "TEMP_BAN",
			want:           "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.start, tt.end, tt.punishmentType))
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		total int64
		want  string
	}{
		{1, "1st Ban"},
		{2, "2nd Ban"},
		{3, "3rd Ban"},
		{4, "4th Ban"},
		{11, "11th Ban"},
		{21, "21th Ban"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rank(tt.total))
	}
}

func TestFormatBanDate(t *testing.T) {
	assert.Equal(t, "Unknown", FormatBanDate(""))
	assert.Equal(t, "Unknown", FormatBanDate("not-a-number"))

	ms := int64(1700000000000)
	want := time.UnixMilli(ms).Format("02.01.2006 15:04")
	assert.Equal(t, want, FormatBanDate("1700000000000"))
}
