package selection

import "testing"

func TestToggleIdempotentUnderDoubleToggle(t *testing.T) {
	s := NewSet()
	s.Toggle(7, 100, 1)

	if selected := s.Toggle(42, 100, 1); !selected {
		t.Fatal("first toggle should select")
	}
	if selected := s.Toggle(42, 100, 1); selected {
		t.Fatal("second toggle should deselect")
	}
	if s.Selected(42) {
		t.Fatal("double-toggled id must not remain selected")
	}
	if !s.Selected(7) || s.Len() != 1 {
		t.Fatalf("unrelated selection disturbed, len=%d", s.Len())
	}
}

func TestToggleDiscardsQuantityEdit(t *testing.T) {
	s := NewSet()
	s.Toggle(1, 100, 5)
	s.SetQuantity(1, "3", 5)
	s.Toggle(1, 100, 5)
	s.Toggle(1, 100, 5)
	if got := s.Quantity(1); got != 5 {
		t.Fatalf("quantity after reselect = %d, want default 5", got)
	}
}

func TestToggleDefaultsToMaximumApprovable(t *testing.T) {
	// Approval screens preselect the full requested amount.
	s := NewSet()
	s.Toggle(9, 100, 12)
	if got := s.Quantity(9); got != 12 {
		t.Fatalf("quantity = %d, want 12", got)
	}
}

func TestSetQuantityIgnoresUnselected(t *testing.T) {
	s := NewSet()
	s.SetQuantity(5, "3", 10)
	if s.Selected(5) {
		t.Fatal("SetQuantity must not implicitly select")
	}
}

func TestClear(t *testing.T) {
	s := NewSet()
	s.Toggle(1, 100, 1)
	s.Toggle(2, 100, 1)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("len after clear = %d", s.Len())
	}
}

func TestSanitizeQuantity(t *testing.T) {
	cases := []struct {
		raw   string
		limit int
		want  string
	}{
		{"5", 10, "5"},
		{"abc", 10, "1"},
		{"", 10, "1"},
		{"0", 10, "1"},
		{"00", 10, "1"},
		{"007", 10, "7"},
		{"12a4", 10, "10"},   // digits 124, clamped to limit
		{"3.5", 10, "10"},    // digits 35, clamped to limit
		{"-4", 10, "4"},      // minus stripped
		{"99", 5, "5"},       // clamp to approve limit
		{"99", 0, "99"},      // no upper bound
		{" 2 ", 10, "2"},     // whitespace stripped
		{"quantity", 3, "1"}, // no digits at all
	}
	for _, tc := range cases {
		if got := SanitizeQuantity(tc.raw, tc.limit); got != tc.want {
			t.Fatalf("SanitizeQuantity(%q, %d) = %q, want %q", tc.raw, tc.limit, got, tc.want)
		}
	}
}

func TestIDsSorted(t *testing.T) {
	s := NewSet()
	for _, id := range []int64{30, 10, 20} {
		s.Toggle(id, 1, 1)
	}
	ids := s.IDs()
	if len(ids) != 3 || ids[0] != 10 || ids[1] != 20 || ids[2] != 30 {
		t.Fatalf("ids = %v", ids)
	}
}
