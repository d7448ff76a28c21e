package models

import "time"

// SnapshotMeta records when each snapshot kind was last replaced.
type SnapshotMeta struct {
	Kind      string    `gorm:"column:kind;primaryKey"`
	FetchedAt time.Time `gorm:"column:fetched_at;not null"`
}

const (
	SnapshotKindWallet  = "wallet"
	SnapshotKindCatalog = "catalog"
)

func (SnapshotMeta) TableName() string {
	return "snapshot_meta"
}
