package pagination

// The backend returns full result sets; paging is sliced locally over the
// already-fetched list. There is no server-side paging protocol to speak.

const (
	// DefaultPageSize is the standard page length when none is configured.
	DefaultPageSize = 20
	// MaxPageSize caps how many rows a single page can show.
	MaxPageSize = 100
)

// NormalizeSize enforces the default and maximum page sizes.
func NormalizeSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages reports how many pages of the given size the list spans.
// An empty list still has one (empty) page so views always have a page 1.
func TotalPages(total, size int) int {
	size = NormalizeSize(size)
	if total <= 0 {
		return 1
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// Page slices out the 1-based page of the given size. Out-of-range pages
// return an empty slice rather than panicking.
func Page[T any](items []T, page, size int) []T {
	size = NormalizeSize(size)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
