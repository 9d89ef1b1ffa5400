package archive

import (
	"time"

	"logbook-manager/feature/logbook"
)

// Snapshot is a named point-in-time copy of the reconciled record list.
type Snapshot struct {
	ID          string           `gorm:"column:id;primaryKey" json:"id"`
	Name        string           `gorm:"column:name" json:"name"`
	RecordCount int              `gorm:"column:record_count" json:"record_count"`
	CreatedAt   time.Time        `gorm:"column:created_at" json:"created_at"`
	Records     []SnapshotRecord `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the default table name.
func (Snapshot) TableName() string {
	return "logbook_snapshots"
}

// SnapshotRecord is one archived record. Position preserves the original
// list order so a restore replays records in the order they were merged.
type SnapshotRecord struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SnapshotID string `gorm:"column:snapshot_id;index" json:"-"`
	Position   int    `gorm:"column:position" json:"position"`
	Callsign   string `gorm:"column:callsign" json:"callsign"`
	Locator    string `gorm:"column:locator" json:"locator"`
	Exchange   string `gorm:"column:exchange" json:"exchange"`
	Comment    string `gorm:"column:comment" json:"comment"`
}

// TableName overrides the default table name.
func (SnapshotRecord) TableName() string {
	return "logbook_snapshot_records"
}

// ToRecord converts the archived row back to an engine record.
func (r SnapshotRecord) ToRecord() logbook.Record {
	return logbook.Record{
		Callsign: r.Callsign,
		Locator:  r.Locator,
		Exchange: r.Exchange,
		Comment:  r.Comment,
	}
}
