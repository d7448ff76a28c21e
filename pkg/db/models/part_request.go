package models

import "time"

// CachedPartRequest is the local snapshot row for a wallet record. Columns
// mirror the backend payload one to one so the snapshot can round-trip.
type CachedPartRequest struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	PartNo            string    `gorm:"column:part_no;not null;index"`
	PartName          string    `gorm:"column:part_name"`
	MaintenanceID     int64     `gorm:"column:maintenance_id;not null;index"`
	RequestedQuantity int       `gorm:"column:requested_quantity;not null"`
	ApproveQuantity   *int      `gorm:"column:approve_quantity"`
	IsApproved        bool      `gorm:"column:is_approved;not null;default:false"`
	InstallQuantity   *int      `gorm:"column:install_quantity"`
	IsRemovalPart     bool      `gorm:"column:is_removal_part;not null;default:false"`
	IsLocalPart       bool      `gorm:"column:is_local_part;not null;default:false"`
	ConsumedQuantity  *int      `gorm:"column:consumed_quantity"`
	FetchedAt         time.Time `gorm:"column:fetched_at;not null"`
}

func (CachedPartRequest) TableName() string {
	return "cached_part_requests"
}
