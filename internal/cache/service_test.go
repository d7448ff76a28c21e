package cache

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/pkg/config"
	"github.com/avictorio/fieldparts/pkg/db"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now func() time.Time) *Service {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	client, err := db.New(context.Background(), config.CacheConfig{
		Enabled: true,
		Path:    filepath.Join(t.TempDir(), "snapshots.db"),
	}, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	svc, err := NewService(ServiceParams{DB: client, Logger: logg, Now: now})
	require.NoError(t, err)
	return svc
}

func intPtr(v int) *int { return &v }

func TestWalletSnapshotRoundTrip(t *testing.T) {
	fetchedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fetchedAt })
	ctx := context.Background()

	records := []parts.PartRequestRecord{
		{ID: 1, PartNo: "BRG-6204", MaintenanceID: 42, RequestedQuantity: 4},
		{ID: 2, PartNo: "SEAL-V80", MaintenanceID: 42, RequestedQuantity: 2,
			ApproveQuantity: intPtr(2), IsApproved: true, InstallQuantity: intPtr(2)},
		{ID: 3, PartNo: "BELT-A33", MaintenanceID: 43, RequestedQuantity: 1, IsRemovalPart: true},
	}
	require.NoError(t, svc.SaveWallet(ctx, records))

	loaded, at, err := svc.LoadWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, records, loaded)
	require.True(t, at.Equal(fetchedAt), "fetched at = %v, want %v", at, fetchedAt)
}

func TestSaveWalletReplacesWholesale(t *testing.T) {
	svc := newTestService(t, time.Now)
	ctx := context.Background()

	require.NoError(t, svc.SaveWallet(ctx, []parts.PartRequestRecord{
		{ID: 1, PartNo: "BRG-6204", MaintenanceID: 42, RequestedQuantity: 4},
		{ID: 2, PartNo: "SEAL-V80", MaintenanceID: 42, RequestedQuantity: 2},
	}))
	require.NoError(t, svc.SaveWallet(ctx, []parts.PartRequestRecord{
		{ID: 3, PartNo: "BELT-A33", MaintenanceID: 43, RequestedQuantity: 1},
	}))

	loaded, _, err := svc.LoadWallet(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, int64(3), loaded[0].ID)
}

func TestLoadWalletEmptyStore(t *testing.T) {
	svc := newTestService(t, time.Now)

	loaded, at, err := svc.LoadWallet(context.Background())
	require.NoError(t, err)
	require.Empty(t, loaded)
	require.True(t, at.IsZero())
}

func TestCatalogSnapshotRoundTrip(t *testing.T) {
	fetchedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return fetchedAt })
	ctx := context.Background()

	items := []parts.InventoryPart{
		{ID: 10, PartNo: "BRG-6204", PartName: "Deep groove bearing", AvailableQuantity: 12},
		{ID: 11, PartNo: "SEAL-V80", PartName: "V-ring seal", Description: "80mm shaft", AvailableQuantity: 3},
	}
	require.NoError(t, svc.SaveCatalog(ctx, items))

	loaded, at, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, items, loaded)
	require.True(t, at.Equal(fetchedAt))
}

func TestSnapshotKindsAreIndependent(t *testing.T) {
	walletAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	catalogAt := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	current := walletAt
	svc := newTestService(t, func() time.Time { return current })
	ctx := context.Background()

	require.NoError(t, svc.SaveWallet(ctx, []parts.PartRequestRecord{
		{ID: 1, PartNo: "BRG-6204", MaintenanceID: 42, RequestedQuantity: 4},
	}))
	current = catalogAt
	require.NoError(t, svc.SaveCatalog(ctx, []parts.InventoryPart{
		{ID: 10, PartNo: "BRG-6204", PartName: "Deep groove bearing"},
	}))

	_, gotWalletAt, err := svc.LoadWallet(ctx)
	require.NoError(t, err)
	require.True(t, gotWalletAt.Equal(walletAt))

	_, gotCatalogAt, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	require.True(t, gotCatalogAt.Equal(catalogAt))
}
