package pagination

import "testing"

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultPageSize},
		{-3, DefaultPageSize},
		{1, 1},
		{MaxPageSize, MaxPageSize},
		{MaxPageSize + 50, MaxPageSize},
	}
	for _, tc := range cases {
		if got := NormalizeSize(tc.in); got != tc.want {
			t.Errorf("NormalizeSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{101, 20, 6},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Page(items, 1, 2); len(got) != 2 || got[0] != 1 {
		t.Fatalf("page 1 = %v", got)
	}
	if got := Page(items, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Fatalf("last partial page = %v", got)
	}
	if got := Page(items, 4, 2); got != nil {
		t.Fatalf("out-of-range page = %v, want nil", got)
	}
	if got := Page(items, 0, 2); len(got) != 2 || got[0] != 1 {
		t.Fatalf("page below 1 should clamp to first, got %v", got)
	}
	if got := Page([]int(nil), 1, 2); got != nil {
		t.Fatalf("empty list page = %v, want nil", got)
	}
}
