package selection

import (
	"sort"
	"strconv"
	"strings"
)

// Set is the ephemeral multi-select state a submission screen builds up
// before one bulk submit. It lives for the span of that interaction, is
// discarded on submit or cancel, and never touches the network. It must not
// be confused with the durable wallet records it references.
type Set struct {
	entries map[int64]Entry
}

// Entry is a selected part with its quantity as typed by the user.
type Entry struct {
	Quantity      string
	MaintenanceID int64
}

func NewSet() *Set {
	return &Set{entries: make(map[int64]Entry)}
}

// Toggle flips the selection state of an id. Re-toggling an already selected
// id removes it along with any quantity edit, which is what makes
// double-toggle a no-op. The reported bool is the new selection state.
func (s *Set) Toggle(id int64, maintenanceID int64, defaultQuantity int) bool {
	if _, ok := s.entries[id]; ok {
		delete(s.entries, id)
		return false
	}
	if defaultQuantity < 1 {
		defaultQuantity = 1
	}
	s.entries[id] = Entry{
		Quantity:      strconv.Itoa(defaultQuantity),
		MaintenanceID: maintenanceID,
	}
	return true
}

// SetQuantity replaces the typed quantity for a selected id after
// sanitization. Calls for unselected ids are ignored.
func (s *Set) SetQuantity(id int64, raw string, limit int) {
	entry, ok := s.entries[id]
	if !ok {
		return
	}
	entry.Quantity = SanitizeQuantity(raw, limit)
	s.entries[id] = entry
}

// Selected reports whether the id is currently in the set.
func (s *Set) Selected(id int64) bool {
	_, ok := s.entries[id]
	return ok
}

// Quantity returns the sanitized numeric value for a selected id, or 0 when
// the id is not selected.
func (s *Set) Quantity(id int64) int {
	entry, ok := s.entries[id]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(entry.Quantity)
	if err != nil {
		return 1
	}
	return n
}

// Len reports how many parts are selected.
func (s *Set) Len() int {
	return len(s.entries)
}

// Clear empties the set. Called after a successful submission or cancel.
func (s *Set) Clear() {
	s.entries = make(map[int64]Entry)
}

// IDs returns the selected ids in ascending order for deterministic
// submission payloads.
func (s *Set) IDs() []int64 {
	ids := make([]int64, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Entries returns a copy of the selection keyed by id.
func (s *Set) Entries() map[int64]Entry {
	out := make(map[int64]Entry, len(s.entries))
	for id, entry := range s.entries {
		out[id] = entry
	}
	return out
}

// SanitizeQuantity reduces raw keyboard input to a usable quantity string:
// digits only, never empty, never zero, clamped to [1, limit]. A limit below
// one means the context imposes no upper bound.
func SanitizeQuantity(raw string, limit int) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return "1"
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Absurdly long input overflows int; clamp to the limit or 1.
		if limit >= 1 {
			return strconv.Itoa(limit)
		}
		return "1"
	}
	if n < 1 {
		return "1"
	}
	if limit >= 1 && n > limit {
		return strconv.Itoa(limit)
	}
	return strconv.Itoa(n)
}
