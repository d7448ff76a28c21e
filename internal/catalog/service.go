package catalog

import (
	"context"
	"strings"

	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/pkg/config"
	"github.com/avictorio/fieldparts/pkg/debounce"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/avictorio/fieldparts/pkg/pagination"
)

// API is the catalog surface of the backend client.
type API interface {
	SearchParts(ctx context.Context, query string) ([]parts.InventoryPart, error)
	ListInventory(ctx context.Context) ([]parts.InventoryPart, error)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	API    API
	Logger *logger.Logger
	Search config.SearchConfig
}

// Service wraps catalog search and listing. The backend returns full result
// sets; paging happens locally over the fetched list.
type Service struct {
	api       API
	logg      *logger.Logger
	debouncer *debounce.Debouncer
	pageSize  int
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.API == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{
		api:       params.API,
		logg:      params.Logger,
		debouncer: debounce.New(params.Search.DebounceWindow),
		pageSize:  pagination.NormalizeSize(params.Search.PageSize),
	}, nil
}

// Search performs an immediate catalog search.
func (s *Service) Search(ctx context.Context, query string) ([]parts.InventoryPart, error) {
	return s.api.SearchParts(ctx, query)
}

// List fetches the whole catalog.
func (s *Service) List(ctx context.Context) ([]parts.InventoryPart, error) {
	return s.api.ListInventory(ctx)
}

// SearchResult is what a debounced search delivers. Query echoes the input
// the result answers, so a consumer can drop results for superseded input
// instead of rendering stale data.
type SearchResult struct {
	Query string
	Parts []parts.InventoryPart
	Err   error
}

// DebouncedSearch schedules a search once the caller has stopped typing for
// the configured quiet window. Each call supersedes the previous pending
// one, so a burst of keystrokes yields at most one request for the final
// settled query. An empty query cancels any pending search and fires
// nothing. The deliver callback runs off the caller's goroutine; a consumer
// that has since navigated away can simply ignore the delivery.
func (s *Service) DebouncedSearch(ctx context.Context, query string, deliver func(SearchResult)) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.debouncer.Cancel()
		return
	}
	s.debouncer.Do(func() {
		result, err := s.api.SearchParts(ctx, trimmed)
		deliver(SearchResult{Query: trimmed, Parts: result, Err: err})
	})
}

// CancelSearch drops any pending debounced search, e.g. on unmount.
func (s *Service) CancelSearch() {
	s.debouncer.Cancel()
}

// Page slices the 1-based page out of a fetched list.
func (s *Service) Page(items []parts.InventoryPart, page int) []parts.InventoryPart {
	return pagination.Page(items, page, s.pageSize)
}

// TotalPages reports how many pages the list spans at the configured size.
func (s *Service) TotalPages(items []parts.InventoryPart) int {
	return pagination.TotalPages(len(items), s.pageSize)
}
