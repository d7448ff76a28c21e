package parts

import (
	"testing"

	"github.com/avictorio/fieldparts/pkg/enums"
)

func intPtr(v int) *int { return &v }

func TestDerivedStatus(t *testing.T) {
	cases := []struct {
		name   string
		record PartRequestRecord
		want   enums.PartStatus
	}{
		{
			name:   "fresh request is pending",
			record: PartRequestRecord{ID: 1, RequestedQuantity: 2},
			want:   enums.PartStatusPending,
		},
		{
			name:   "approved but not installed",
			record: PartRequestRecord{ID: 2, RequestedQuantity: 2, IsApproved: true, ApproveQuantity: intPtr(2)},
			want:   enums.PartStatusApproved,
		},
		{
			name:   "installed",
			record: PartRequestRecord{ID: 3, RequestedQuantity: 2, IsApproved: true, ApproveQuantity: intPtr(2), InstallQuantity: intPtr(2)},
			want:   enums.PartStatusInstalled,
		},
		{
			name:   "zero install quantity is not installed",
			record: PartRequestRecord{ID: 4, RequestedQuantity: 2, IsApproved: true, ApproveQuantity: intPtr(2), InstallQuantity: intPtr(0)},
			want:   enums.PartStatusApproved,
		},
		{
			name:   "removal record",
			record: PartRequestRecord{ID: 5, RequestedQuantity: 1, IsApproved: true, ApproveQuantity: intPtr(1), IsRemovalPart: true},
			want:   enums.PartStatusRemoved,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Status(); got != tc.want {
				t.Fatalf("status = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestInstallableTerminalAfterInstall(t *testing.T) {
	rec := PartRequestRecord{ID: 1, RequestedQuantity: 2, IsApproved: true, ApproveQuantity: intPtr(2)}
	if !rec.Installable() {
		t.Fatal("approved record should be installable")
	}
	if got := rec.InstallableQuantity(); got != 2 {
		t.Fatalf("installable quantity = %d, want 2", got)
	}

	rec.InstallQuantity = intPtr(2)
	if rec.Installable() {
		t.Fatal("installed record must be terminal for installation")
	}
	if got := rec.InstallableQuantity(); got != 0 {
		t.Fatalf("installable quantity after install = %d, want 0", got)
	}
}

func TestInstallableExcludesRemovalAndUnapproved(t *testing.T) {
	removal := PartRequestRecord{ID: 1, IsApproved: true, ApproveQuantity: intPtr(1), IsRemovalPart: true}
	if removal.Installable() {
		t.Fatal("removal record must not be installable")
	}
	pending := PartRequestRecord{ID: 2, RequestedQuantity: 3}
	if pending.Installable() {
		t.Fatal("unapproved record must not be installable")
	}
}

func TestApprovableQuantity(t *testing.T) {
	rec := PartRequestRecord{ID: 1, RequestedQuantity: 4}
	if got := rec.ApprovableQuantity(); got != 4 {
		t.Fatalf("approvable quantity = %d, want 4", got)
	}
	rec.IsApproved = true
	if got := rec.ApprovableQuantity(); got != 0 {
		t.Fatalf("approvable quantity after approval = %d, want 0", got)
	}
}
