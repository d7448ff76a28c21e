package maintenance

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/avictorio/fieldparts/internal/api"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/enums"
	"github.com/avictorio/fieldparts/pkg/logger"
)

type fakeTicketAPI struct {
	detail      *api.MaintenanceDetail
	uploads     []api.UploadPhotoParams
	detailCalls int
}

func (f *fakeTicketAPI) GetMaintenance(ctx context.Context, maintenanceID int64) (*api.MaintenanceDetail, error) {
	f.detailCalls++
	return f.detail, nil
}

func (f *fakeTicketAPI) UploadPhoto(ctx context.Context, params api.UploadPhotoParams) error {
	f.uploads = append(f.uploads, params)
	return nil
}

func newTicketService(t *testing.T, fake *fakeTicketAPI) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		API:    fake,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestDetailValidatesID(t *testing.T) {
	fake := &fakeTicketAPI{}
	svc := newTicketService(t, fake)
	if _, err := svc.Detail(context.Background(), 0); !pkgerrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fake.detailCalls != 0 {
		t.Fatal("invalid id must not reach the network")
	}
}

func TestDetailPassesThrough(t *testing.T) {
	fake := &fakeTicketAPI{detail: &api.MaintenanceDetail{ID: 42, AssetName: "Pump"}}
	svc := newTicketService(t, fake)
	detail, err := svc.Detail(context.Background(), 42)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.ID != 42 || detail.AssetName != "Pump" {
		t.Fatalf("detail = %+v", detail)
	}
}

func TestAttachPhoto(t *testing.T) {
	fake := &fakeTicketAPI{}
	svc := newTicketService(t, fake)

	err := svc.AttachPhoto(context.Background(), 42, enums.PhotoTypeCompletion, "done.jpg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(fake.uploads) != 1 || fake.uploads[0].MaintenanceID != 42 || fake.uploads[0].Type != enums.PhotoTypeCompletion {
		t.Fatalf("uploads = %+v", fake.uploads)
	}

	if err := svc.AttachPhoto(context.Background(), 42, enums.PhotoType("bad"), "x.jpg", strings.NewReader("img")); !pkgerrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fake.uploads) != 1 {
		t.Fatal("invalid upload must not reach the network")
	}
}
