package api

import (
	"context"
	"fmt"
	"time"

	"github.com/avictorio/fieldparts/internal/parts"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
)

// MaintenanceDetail is the full ticket as the backend returns it, with the
// nested collections a detail screen renders.
type MaintenanceDetail struct {
	ID          int64                     `json:"id"`
	AssetName   string                    `json:"asset_name"`
	Description string                    `json:"description"`
	Status      string                    `json:"status"`
	Parts       []parts.PartRequestRecord `json:"parts"`
	Comments    []MaintenanceComment      `json:"comments"`
	Photos      []MaintenancePhoto        `json:"photos"`
}

// MaintenanceComment is one thread entry on a ticket. Rejections arrive here
// as comments with IsAccepted=false rather than as a state on the record.
type MaintenanceComment struct {
	ID         int64     `json:"id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	IsAccepted *bool     `json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaintenancePhoto is an uploaded ticket photo reference.
type MaintenancePhoto struct {
	ID            int64  `json:"id"`
	MaintenanceID int64  `json:"maintenance_id"`
	Type          string `json:"types"`
	URL           string `json:"url"`
}

// GetMaintenance fetches a full ticket including nested parts, comments and
// photos.
func (c *Client) GetMaintenance(ctx context.Context, maintenanceID int64) (*MaintenanceDetail, error) {
	if maintenanceID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maintenance id is required")
	}
	var detail MaintenanceDetail
	path := fmt.Sprintf("maintenances/%d", maintenanceID)
	if err := c.get(ctx, "maintenance_detail", path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// LocalPurchasePayload is one off-inventory purchase line submitted for
// approval. Price and total are decimal strings to keep the wire format
// exact.
type LocalPurchasePayload struct {
	PartNo        string `json:"part_no" validate:"required"`
	PartName      string `json:"part_name" validate:"required"`
	Quantity      string `json:"quantity" validate:"required"`
	Price         string `json:"price" validate:"required"`
	TotalPrice    string `json:"total_price" validate:"required"`
	MaintenanceID int64  `json:"maintenance_id" validate:"required,gt=0"`
	EntryDate     string `json:"entry_date" validate:"required"`
	IsArrived     bool   `json:"is_arrived"`
	IsRefurbish   bool   `json:"is_refurbish"`
}

// CreateLocalPurchase submits a single local purchase entry. Callers submit
// one line per call; batching is deliberately not offered here.
func (c *Client) CreateLocalPurchase(ctx context.Context, payload LocalPurchasePayload) error {
	return c.post(ctx, "local_purchase", "parts/local-purchase", payload, nil)
}
