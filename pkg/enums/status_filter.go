package enums

import "fmt"

// StatusFilter selects which slice of a wallet a view shows.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterInstalled StatusFilter = "installed"
	StatusFilterRemoved   StatusFilter = "removed"
	StatusFilterApproved  StatusFilter = "approved"
	StatusFilterPending   StatusFilter = "pending"
)

var validStatusFilters = []StatusFilter{
	StatusFilterAll,
	StatusFilterInstalled,
	StatusFilterRemoved,
	StatusFilterApproved,
	StatusFilterPending,
}

// String implements fmt.Stringer.
func (s StatusFilter) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s StatusFilter) IsValid() bool {
	for _, candidate := range validStatusFilters {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStatusFilter converts raw input into a StatusFilter.
func ParseStatusFilter(value string) (StatusFilter, error) {
	for _, candidate := range validStatusFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid status filter %q", value)
}
