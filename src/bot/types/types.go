package types

// CaseKind identifies which flavor of support channel a case lives in.
type CaseKind string

const (
	KindTicket CaseKind = "ticket"
	KindApply  CaseKind = "apply"
	KindUnban  CaseKind = "unban"
)

// Punishment is an active punishment row, looked up by ban ID. The
// table belongs to the game server's moderation plugin; this bot only
// reads it. Start and End are epoch-millisecond strings, with "0" and
// "permanent" used as never-expires sentinels.
type Punishment struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name"`
	Reason         string `gorm:"column:reason"`
	PunishmentType string `gorm:"column:punishmentType"`
	Start          string `gorm:"column:start"`
	End            string `gorm:"column:end"`
	Operator       string `gorm:"column:operator"`
}

func (Punishment) TableName() string { return "Punishments" }

// PunishmentRecord is a historical punishment row. Some deployments
// lack this table entirely; callers must be prepared to fall back to
// Punishments.
type PunishmentRecord struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name"`
	Reason         string `gorm:"column:reason"`
	PunishmentType string `gorm:"column:punishmentType"`
	Start          string `gorm:"column:start"`
	End            string `gorm:"column:end"`
	Operator       string `gorm:"column:operator"`
}

func (PunishmentRecord) TableName() string { return "PunishmentHistory" }
