package catalog

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/pkg/config"
	"github.com/avictorio/fieldparts/pkg/logger"
)

type fakeCatalogAPI struct {
	searches int32
	catalog  []parts.InventoryPart
}

func (f *fakeCatalogAPI) SearchParts(ctx context.Context, query string) ([]parts.InventoryPart, error) {
	atomic.AddInt32(&f.searches, 1)
	return f.catalog, nil
}

func (f *fakeCatalogAPI) ListInventory(ctx context.Context) ([]parts.InventoryPart, error) {
	return f.catalog, nil
}

func newCatalogService(t *testing.T, fake *fakeCatalogAPI, window time.Duration) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		API:    fake,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Search: config.SearchConfig{DebounceWindow: window, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestDebouncedSearchFiresOnlySettledQuery(t *testing.T) {
	fake := &fakeCatalogAPI{catalog: []parts.InventoryPart{{ID: 1, PartNo: "B-1"}}}
	svc := newCatalogService(t, fake, 20*time.Millisecond)

	results := make(chan SearchResult, 4)
	deliver := func(r SearchResult) { results <- r }

	svc.DebouncedSearch(context.Background(), "b", deliver)
	svc.DebouncedSearch(context.Background(), "bo", deliver)
	svc.DebouncedSearch(context.Background(), "bolt", deliver)

	select {
	case r := <-results:
		if r.Query != "bolt" {
			t.Fatalf("delivered query %q, want the settled one", r.Query)
		}
		if r.Err != nil || len(r.Parts) != 1 {
			t.Fatalf("result = %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced search never fired")
	}

	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&fake.searches); n != 1 {
		t.Fatalf("searches = %d, want exactly 1 for the settled query", n)
	}
}

func TestClearingBeforeQuietWindowFiresNothing(t *testing.T) {
	fake := &fakeCatalogAPI{}
	svc := newCatalogService(t, fake, 30*time.Millisecond)

	fired := make(chan SearchResult, 1)
	svc.DebouncedSearch(context.Background(), "bolt", func(r SearchResult) { fired <- r })
	// Field cleared before the timer elapses.
	svc.DebouncedSearch(context.Background(), "", func(r SearchResult) { fired <- r })

	time.Sleep(80 * time.Millisecond)
	select {
	case r := <-fired:
		t.Fatalf("unexpected delivery for %q", r.Query)
	default:
	}
	if n := atomic.LoadInt32(&fake.searches); n != 0 {
		t.Fatalf("searches = %d, want 0 after clearing the field", n)
	}
}

func TestCancelSearchDropsPending(t *testing.T) {
	fake := &fakeCatalogAPI{}
	svc := newCatalogService(t, fake, 30*time.Millisecond)

	svc.DebouncedSearch(context.Background(), "bolt", func(SearchResult) {
		t.Error("delivery after cancel")
	})
	svc.CancelSearch()

	time.Sleep(80 * time.Millisecond)
	if n := atomic.LoadInt32(&fake.searches); n != 0 {
		t.Fatalf("searches = %d, want 0 after cancel", n)
	}
}

func TestPaging(t *testing.T) {
	catalog := []parts.InventoryPart{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}
	svc := newCatalogService(t, &fakeCatalogAPI{catalog: catalog}, time.Millisecond)

	if got := svc.TotalPages(catalog); got != 3 {
		t.Fatalf("total pages = %d, want 3", got)
	}
	page2 := svc.Page(catalog, 2)
	if len(page2) != 2 || page2[0].ID != 3 || page2[1].ID != 4 {
		t.Fatalf("page 2 = %+v", page2)
	}
	page3 := svc.Page(catalog, 3)
	if len(page3) != 1 || page3[0].ID != 5 {
		t.Fatalf("page 3 = %+v", page3)
	}
	if got := svc.Page(catalog, 4); len(got) != 0 {
		t.Fatalf("page 4 = %+v, want empty", got)
	}
}
