package enums

import "fmt"

// PartStatus is the derived lifecycle state of a part request record. It is
// computed from the record's fields and never stored.
type PartStatus string

const (
	PartStatusPending   PartStatus = "pending"
	PartStatusApproved  PartStatus = "approved"
	PartStatusInstalled PartStatus = "installed"
	PartStatusRemoved   PartStatus = "removed"
)

var validPartStatuses = []PartStatus{
	PartStatusPending,
	PartStatusApproved,
	PartStatusInstalled,
	PartStatusRemoved,
}

// String implements fmt.Stringer.
func (p PartStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p PartStatus) IsValid() bool {
	for _, candidate := range validPartStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePartStatus converts raw input into a PartStatus.
func ParsePartStatus(value string) (PartStatus, error) {
	for _, candidate := range validPartStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid part status %q", value)
}
