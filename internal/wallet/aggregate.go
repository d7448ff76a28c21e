package wallet

import (
	"sort"

	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/pkg/enums"
)

// Everything in this package is a pure function over whatever record set was
// last fetched. Summaries are recomputed on demand and never stored, so there
// is exactly one source of truth: the records themselves.

// FilterByStatus keeps records matching the requested bucket. Pending is
// simply "not approved yet", so a removal record awaiting approval shows up
// under both pending and removed; the removal tag is independent of the
// approval track.
func FilterByStatus(records []parts.PartRequestRecord, filter enums.StatusFilter) []parts.PartRequestRecord {
	if filter == enums.StatusFilterAll || filter == "" {
		return append([]parts.PartRequestRecord(nil), records...)
	}
	out := make([]parts.PartRequestRecord, 0, len(records))
	for _, rec := range records {
		if matchesFilter(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesFilter(rec parts.PartRequestRecord, filter enums.StatusFilter) bool {
	switch filter {
	case enums.StatusFilterInstalled:
		return rec.Installed()
	case enums.StatusFilterRemoved:
		return rec.IsRemovalPart && !rec.Installed()
	case enums.StatusFilterApproved:
		return rec.IsApproved && !rec.Installed() && !rec.IsRemovalPart
	case enums.StatusFilterPending:
		return !rec.IsApproved
	default:
		return false
	}
}

// FilterByTicket scopes records to one maintenance ticket unless showAll is
// set. This is the default scoping of a ticket-detail view.
func FilterByTicket(records []parts.PartRequestRecord, maintenanceID int64, showAll bool) []parts.PartRequestRecord {
	if showAll {
		return append([]parts.PartRequestRecord(nil), records...)
	}
	out := make([]parts.PartRequestRecord, 0, len(records))
	for _, rec := range records {
		if rec.MaintenanceID == maintenanceID {
			out = append(out, rec)
		}
	}
	return out
}

// GroupedLine is one compacted ledger row: a part number with installed and
// removed lots kept apart even for the same part.
type GroupedLine struct {
	PartNo    string
	Installed bool
	Quantity  int
}

type groupKey struct {
	partNo    string
	installed bool
}

// GroupAndSum compacts records into per-(part_no, installed) totals.
// Installed lots sum their installed quantity; removal lots sum their
// requested quantity. Output order is deterministic regardless of input
// order: part number ascending, installed lots before removed.
func GroupAndSum(records []parts.PartRequestRecord) []GroupedLine {
	sums := make(map[groupKey]int)
	for _, rec := range records {
		key := groupKey{partNo: rec.PartNo, installed: rec.Installed()}
		sums[key] += lotQuantity(rec)
	}

	lines := make([]GroupedLine, 0, len(sums))
	for key, qty := range sums {
		lines = append(lines, GroupedLine{PartNo: key.partNo, Installed: key.installed, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].PartNo != lines[j].PartNo {
			return lines[i].PartNo < lines[j].PartNo
		}
		return lines[i].Installed && !lines[j].Installed
	})
	return lines
}

func lotQuantity(rec parts.PartRequestRecord) int {
	if rec.Installed() {
		return *rec.InstallQuantity
	}
	return rec.RequestedQuantity
}

// Summary aggregates a record set for a wallet header view.
type Summary struct {
	Total     int
	Pending   int
	Approved  int
	Installed int
	Removed   int

	RequestedQty int
	ApprovedQty  int
	InstalledQty int
}

// Summarize folds the record set into per-status counts and quantity totals.
func Summarize(records []parts.PartRequestRecord) Summary {
	var s Summary
	for _, rec := range records {
		s.Total++
		switch rec.Status() {
		case enums.PartStatusInstalled:
			s.Installed++
		case enums.PartStatusRemoved:
			s.Removed++
		case enums.PartStatusApproved:
			s.Approved++
		default:
			s.Pending++
		}
		s.RequestedQty += rec.RequestedQuantity
		if rec.ApproveQuantity != nil {
			s.ApprovedQty += *rec.ApproveQuantity
		}
		if rec.InstallQuantity != nil {
			s.InstalledQty += *rec.InstallQuantity
		}
	}
	return s
}
