package localpurchase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/avictorio/fieldparts/internal/api"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/shopspring/decimal"
)

type fakePurchaseAPI struct {
	received []api.LocalPurchasePayload
	failAt   int // 1-based index of the call that fails; 0 never fails
	failWith error
}

func (f *fakePurchaseAPI) CreateLocalPurchase(ctx context.Context, payload api.LocalPurchasePayload) error {
	if f.failAt > 0 && len(f.received)+1 == f.failAt {
		return f.failWith
	}
	f.received = append(f.received, payload)
	return nil
}

func newPurchaseService(t *testing.T, fake *fakePurchaseAPI) *Service {
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

func makeItem(t *testing.T, partNo, qty, price string) *Item {
	t.Helper()
	item := NewItem(partNo, partNo+" name")
	if err := item.SetQuantity(qty); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := item.SetPricePerUnit(price); err != nil {
		t.Fatalf("set price: %v", err)
	}
	return item
}

func TestSubmitAllSendsOneRequestPerLine(t *testing.T) {
	fake := &fakePurchaseAPI{}
	svc := newPurchaseService(t, fake)

	items := []*Item{
		makeItem(t, "LP-1", "3", "10.50"),
		makeItem(t, "LP-2", "1", "99.99"),
	}
	err := svc.SubmitAll(context.Background(), items, SubmitOptions{
		MaintenanceID: 7,
		EntryDate:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(fake.received) != 2 {
		t.Fatalf("received %d payloads, want 2", len(fake.received))
	}
	first := fake.received[0]
	if first.TotalPrice != "31.50" || first.Quantity != "3" {
		t.Fatalf("payload = %+v", first)
	}
	price, err := decimal.NewFromString(first.Price)
	if err != nil || !price.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("price = %q", first.Price)
	}
	if first.MaintenanceID != 7 || first.EntryDate != "2025-03-09" {
		t.Fatalf("payload = %+v", first)
	}
}

func TestSubmitAllAbortsOnFirstFailure(t *testing.T) {
	fake := &fakePurchaseAPI{
		failAt:   2,
		failWith: pkgerrors.New(pkgerrors.CodeServer, "duplicate entry"),
	}
	svc := newPurchaseService(t, fake)

	items := []*Item{
		makeItem(t, "LP-1", "1", "1.00"),
		makeItem(t, "LP-2", "1", "2.00"),
		makeItem(t, "LP-3", "1", "3.00"),
	}
	err := svc.SubmitAll(context.Background(), items, SubmitOptions{MaintenanceID: 7})
	if err == nil {
		t.Fatal("expected failure")
	}
	if len(fake.received) != 1 {
		t.Fatalf("received %d payloads, want 1 (abort after failure)", len(fake.received))
	}
	msg := pkgerrors.UserMessage(err)
	if !strings.Contains(msg, "line 2") || !strings.Contains(msg, "LP-2") {
		t.Fatalf("error %q does not name the failing line", msg)
	}
	if !strings.Contains(msg, "duplicate entry") {
		t.Fatalf("error %q does not carry the server message", msg)
	}
}

func TestSubmitAllValidatesBeforeAnyRequest(t *testing.T) {
	fake := &fakePurchaseAPI{}
	svc := newPurchaseService(t, fake)

	items := []*Item{
		makeItem(t, "LP-1", "1", "1.00"),
		NewItem("LP-2", "incomplete"), // no quantity or price
	}
	err := svc.SubmitAll(context.Background(), items, SubmitOptions{MaintenanceID: 7})
	if !pkgerrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fake.received) != 0 {
		t.Fatalf("received %d payloads, want 0 (validation precedes network)", len(fake.received))
	}
}
