package models

import "time"

// CachedInventoryPart is the local snapshot row for a catalog part.
type CachedInventoryPart struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	PartNo            string    `gorm:"column:part_no;not null;index"`
	PartName          string    `gorm:"column:part_name;not null"`
	Description       string    `gorm:"column:description"`
	AvailableQuantity int       `gorm:"column:available_quantity;not null;default:0"`
	FetchedAt         time.Time `gorm:"column:fetched_at;not null"`
}

func (CachedInventoryPart) TableName() string {
	return "cached_inventory_parts"
}
