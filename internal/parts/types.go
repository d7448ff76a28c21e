package parts

import (
	"github.com/avictorio/fieldparts/pkg/enums"
)

// InventoryPart identifies a stockable catalog item. The catalog is owned by
// the backend; the client refreshes it wholesale and never mutates it.
type InventoryPart struct {
	ID                int64  `json:"id"`
	PartNo            string `json:"part_no"`
	PartName          string `json:"part_name"`
	Description       string `json:"description"`
	AvailableQuantity int    `json:"available_quantity"`
}

// PartRequestRecord is the lifecycle entity a maintenance ticket accumulates.
// RequestedQuantity is fixed at creation; approval sets ApproveQuantity once;
// installation sets InstallQuantity once. Records are never deleted client
// side; cancelling a request is a backend action, not a local mutation.
type PartRequestRecord struct {
	ID                int64  `json:"id"`
	PartNo            string `json:"part_no"`
	PartName          string `json:"part_name,omitempty"`
	MaintenanceID     int64  `json:"maintenance_id"`
	RequestedQuantity int    `json:"requested_quantity"`
	ApproveQuantity   *int   `json:"approve_quantity"`
	IsApproved        bool   `json:"is_approved"`
	InstallQuantity   *int   `json:"install_quantity"`
	IsRemovalPart     bool   `json:"is_removal_part"`
	IsLocalPart       bool   `json:"is_local_part"`
	ConsumedQuantity  *int   `json:"consumed_quantity"`
}

// Installed reports whether any quantity has been installed.
func (r PartRequestRecord) Installed() bool {
	return r.InstallQuantity != nil && *r.InstallQuantity > 0
}

// Status derives the lifecycle state. Installation wins over the removal tag
// only because a valid record can never carry both; the removal tag wins over
// plain approval so removal lots keep their own bucket in wallet views.
func (r PartRequestRecord) Status() enums.PartStatus {
	switch {
	case r.Installed():
		return enums.PartStatusInstalled
	case r.IsRemovalPart:
		return enums.PartStatusRemoved
	case r.IsApproved:
		return enums.PartStatusApproved
	default:
		return enums.PartStatusPending
	}
}

// Installable reports whether the record may still be picked for
// installation. Any positive installed quantity is terminal: re-installing
// the same part needs a brand-new request record.
func (r PartRequestRecord) Installable() bool {
	if !r.IsApproved || r.IsRemovalPart {
		return false
	}
	if r.ApproveQuantity == nil || *r.ApproveQuantity <= 0 {
		return false
	}
	return !r.Installed()
}

// InstallableQuantity is the upper bound an install submission may use.
// Zero means the record is not installable at all.
func (r PartRequestRecord) InstallableQuantity() int {
	if !r.Installable() {
		return 0
	}
	return *r.ApproveQuantity
}

// ApprovableQuantity is the default and maximum an approver can grant.
func (r PartRequestRecord) ApprovableQuantity() int {
	if r.IsApproved {
		return 0
	}
	return r.RequestedQuantity
}

// RequestLine is one entry of a "request parts" submission.
type RequestLine struct {
	PartNo        string `json:"part_no" validate:"required"`
	MaintenanceID int64  `json:"maintenance_id" validate:"required,gt=0"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
}

// ApproveDecision is one entry of an approval batch.
type ApproveDecision struct {
	RecordID        int64 `json:"id" validate:"required,gt=0"`
	ApproveQuantity int   `json:"approve_quantity" validate:"required,gt=0"`
}

// InstallOrder is one entry of an installation batch.
type InstallOrder struct {
	RecordID      int64 `json:"part_id" validate:"required,gt=0"`
	MaintenanceID int64 `json:"maintenance_id" validate:"required,gt=0"`
	Quantity      int   `json:"quantity" validate:"required,gt=0"`
}

// RemoveOrder takes a part off the asset, referencing inventory directly.
// The server is authoritative on stock sufficiency, so no upper bound here.
type RemoveOrder struct {
	PartID        int64 `json:"part_id" validate:"required,gt=0"`
	MaintenanceID int64 `json:"maintenance_id" validate:"required,gt=0"`
	Quantity      int   `json:"quantity" validate:"required,gt=0"`
}

// AssignLine hands a part to another engineer on the same ticket.
type AssignLine struct {
	PartNo              string `json:"part_no" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,gt=0"`
	ServiceSalePersonID int64  `json:"service_sale_person_id" validate:"required,gt=0"`
	MaintenanceID       int64  `json:"maintenance_id" validate:"required,gt=0"`
}
