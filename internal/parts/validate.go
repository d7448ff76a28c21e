package parts

import (
	"fmt"

	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"go.uber.org/multierr"
)

// Batch validators run before any network call and judge the batch
// wholesale: one bad entry rejects everything, and the returned error
// describes every offending entry, not just the first.

// ValidateRequestLines checks a "request parts" submission.
func ValidateRequestLines(lines []RequestLine) error {
	if len(lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no parts selected")
	}
	var errs error
	for i, line := range lines {
		if line.PartNo == "" {
			errs = multierr.Append(errs, entryErr(i, "part number is required"))
		}
		if line.MaintenanceID <= 0 {
			errs = multierr.Append(errs, entryErr(i, "maintenance ticket is required"))
		}
		if line.Quantity <= 0 {
			errs = multierr.Append(errs, entryErr(i, "quantity must be a positive integer"))
		}
	}
	return wrapBatch(errs)
}

// ValidateApproveBatch checks an approval batch against the records it
// targets. Every decision must reference a known, not-yet-approved record
// and grant 0 < approve_quantity <= requested_quantity.
func ValidateApproveBatch(decisions []ApproveDecision, records map[int64]PartRequestRecord) error {
	if len(decisions) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no approval decisions given")
	}
	var errs error
	for i, d := range decisions {
		rec, ok := records[d.RecordID]
		if !ok {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d not found in the current wallet", d.RecordID)))
			continue
		}
		if rec.IsApproved {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d is already approved", d.RecordID)))
			continue
		}
		if d.ApproveQuantity <= 0 {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d: approve quantity must be positive", d.RecordID)))
			continue
		}
		if d.ApproveQuantity > rec.RequestedQuantity {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf(
				"record %d: approve quantity %d exceeds requested %d",
				d.RecordID, d.ApproveQuantity, rec.RequestedQuantity)))
		}
	}
	return wrapBatch(errs)
}

// ValidateInstallBatch checks an installation batch against the records it
// targets. A record must be approved, on the installation track, never
// installed before, and the quantity must fit within the approved amount.
func ValidateInstallBatch(orders []InstallOrder, records map[int64]PartRequestRecord) error {
	if len(orders) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no installation entries given")
	}
	var errs error
	for i, o := range orders {
		rec, ok := records[o.RecordID]
		if !ok {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d not found in the current wallet", o.RecordID)))
			continue
		}
		if !rec.IsApproved {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d is not approved yet", o.RecordID)))
			continue
		}
		if rec.IsRemovalPart {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d is a removal record and cannot be installed", o.RecordID)))
			continue
		}
		if rec.Installed() {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d is already installed", o.RecordID)))
			continue
		}
		if o.Quantity <= 0 {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf("record %d: install quantity must be positive", o.RecordID)))
			continue
		}
		limit := rec.InstallableQuantity()
		if o.Quantity > limit {
			errs = multierr.Append(errs, entryErr(i, fmt.Sprintf(
				"record %d: install quantity %d exceeds approved %d",
				o.RecordID, o.Quantity, limit)))
		}
	}
	return wrapBatch(errs)
}

// ValidateRemoveOrders checks a removal submission. Only positivity is
// enforced locally; stock sufficiency belongs to the server.
func ValidateRemoveOrders(orders []RemoveOrder) error {
	if len(orders) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no removal entries given")
	}
	var errs error
	for i, o := range orders {
		if o.PartID <= 0 {
			errs = multierr.Append(errs, entryErr(i, "part is required"))
		}
		if o.MaintenanceID <= 0 {
			errs = multierr.Append(errs, entryErr(i, "maintenance ticket is required"))
		}
		if o.Quantity <= 0 {
			errs = multierr.Append(errs, entryErr(i, "quantity must be a positive integer"))
		}
	}
	return wrapBatch(errs)
}

// ValidateAssignLines checks a part assignment submission.
func ValidateAssignLines(lines []AssignLine) error {
	if len(lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no assignment entries given")
	}
	var errs error
	for i, l := range lines {
		if l.PartNo == "" {
			errs = multierr.Append(errs, entryErr(i, "part number is required"))
		}
		if l.ServiceSalePersonID <= 0 {
			errs = multierr.Append(errs, entryErr(i, "assignee is required"))
		}
		if l.MaintenanceID <= 0 {
			errs = multierr.Append(errs, entryErr(i, "maintenance ticket is required"))
		}
		if l.Quantity <= 0 {
			errs = multierr.Append(errs, entryErr(i, "quantity must be a positive integer"))
		}
	}
	return wrapBatch(errs)
}

// RecordIndex keys a record slice by ID for batch validation.
func RecordIndex(records []PartRequestRecord) map[int64]PartRequestRecord {
	index := make(map[int64]PartRequestRecord, len(records))
	for _, rec := range records {
		index[rec.ID] = rec
	}
	return index
}

func entryErr(index int, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("entry %d: %s", index+1, msg))
}

func wrapBatch(errs error) error {
	if errs == nil {
		return nil
	}
	all := multierr.Errors(errs)
	msgs := make([]string, 0, len(all))
	for _, e := range all {
		if typed := pkgerrors.As(e); typed != nil {
			msgs = append(msgs, typed.Message())
		} else {
			msgs = append(msgs, e.Error())
		}
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "batch rejected").WithDetails(msgs)
}
