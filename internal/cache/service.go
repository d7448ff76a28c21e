package cache

import (
	"context"
	"time"

	"github.com/avictorio/fieldparts/internal/parts"
	"github.com/avictorio/fieldparts/pkg/db"
	"github.com/avictorio/fieldparts/pkg/db/models"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
	"gorm.io/gorm"
)

// Service keeps the last successfully fetched wallet and catalog in the
// local sqlite store so views keep rendering when the device is offline.
// Snapshots are replaced wholesale; the backend stays the single source of
// truth and stale rows never merge with fresh ones.
type Service struct {
	db   *db.Client
	logg *logger.Logger
	now  func() time.Time
}

// ServiceParams groups dependencies for the snapshot service.
type ServiceParams struct {
	DB     *db.Client
	Logger *logger.Logger
	Now    func() time.Time
}

// NewService builds a snapshot service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{db: params.DB, logg: params.Logger, now: now}, nil
}

// SaveWallet replaces the wallet snapshot with the given records.
func (s *Service) SaveWallet(ctx context.Context, records []parts.PartRequestRecord) error {
	fetchedAt := s.now().UTC()
	rows := make([]models.CachedPartRequest, 0, len(records))
	for _, rec := range records {
		rows = append(rows, walletRow(rec, fetchedAt))
	}

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CachedPartRequest{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Save(&models.SnapshotMeta{Kind: models.SnapshotKindWallet, FetchedAt: fetchedAt}).Error
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, "save wallet snapshot")
	}
	s.logg.Info(s.logg.WithField(ctx, "count", len(rows)), "wallet snapshot saved")
	return nil
}

// LoadWallet returns the cached wallet and when it was fetched. A missing
// snapshot is not an error; it comes back empty with a zero time.
func (s *Service) LoadWallet(ctx context.Context) ([]parts.PartRequestRecord, time.Time, error) {
	var rows []models.CachedPartRequest
	if err := s.db.DB().WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, time.Time{}, pkgerrors.Wrap(pkgerrors.CodeServer, err, "load wallet snapshot")
	}
	records := make([]parts.PartRequestRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, walletRecord(row))
	}
	fetchedAt, err := s.snapshotTime(ctx, models.SnapshotKindWallet)
	if err != nil {
		return nil, time.Time{}, err
	}
	return records, fetchedAt, nil
}

// SaveCatalog replaces the catalog snapshot with the given parts.
func (s *Service) SaveCatalog(ctx context.Context, items []parts.InventoryPart) error {
	fetchedAt := s.now().UTC()
	rows := make([]models.CachedInventoryPart, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.CachedInventoryPart{
			ID:                item.ID,
			PartNo:            item.PartNo,
			PartName:          item.PartName,
			Description:       item.Description,
			AvailableQuantity: item.AvailableQuantity,
			FetchedAt:         fetchedAt,
		})
	}

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CachedInventoryPart{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Save(&models.SnapshotMeta{Kind: models.SnapshotKindCatalog, FetchedAt: fetchedAt}).Error
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, "save catalog snapshot")
	}
	s.logg.Info(s.logg.WithField(ctx, "count", len(rows)), "catalog snapshot saved")
	return nil
}

// LoadCatalog returns the cached catalog and when it was fetched.
func (s *Service) LoadCatalog(ctx context.Context) ([]parts.InventoryPart, time.Time, error) {
	var rows []models.CachedInventoryPart
	if err := s.db.DB().WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, time.Time{}, pkgerrors.Wrap(pkgerrors.CodeServer, err, "load catalog snapshot")
	}
	items := make([]parts.InventoryPart, 0, len(rows))
	for _, row := range rows {
		items = append(items, parts.InventoryPart{
			ID:                row.ID,
			PartNo:            row.PartNo,
			PartName:          row.PartName,
			Description:       row.Description,
			AvailableQuantity: row.AvailableQuantity,
		})
	}
	fetchedAt, err := s.snapshotTime(ctx, models.SnapshotKindCatalog)
	if err != nil {
		return nil, time.Time{}, err
	}
	return items, fetchedAt, nil
}

func (s *Service) snapshotTime(ctx context.Context, kind string) (time.Time, error) {
	var meta models.SnapshotMeta
	err := s.db.DB().WithContext(ctx).Where("kind = ?", kind).First(&meta).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return time.Time{}, nil
		}
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeServer, err, "load snapshot meta")
	}
	return meta.FetchedAt, nil
}

func walletRow(rec parts.PartRequestRecord, fetchedAt time.Time) models.CachedPartRequest {
	return models.CachedPartRequest{
		ID:                rec.ID,
		PartNo:            rec.PartNo,
		PartName:          rec.PartName,
		MaintenanceID:     rec.MaintenanceID,
		RequestedQuantity: rec.RequestedQuantity,
		ApproveQuantity:   rec.ApproveQuantity,
		IsApproved:        rec.IsApproved,
		InstallQuantity:   rec.InstallQuantity,
		IsRemovalPart:     rec.IsRemovalPart,
		IsLocalPart:       rec.IsLocalPart,
		ConsumedQuantity:  rec.ConsumedQuantity,
		FetchedAt:         fetchedAt,
	}
}

func walletRecord(row models.CachedPartRequest) parts.PartRequestRecord {
	return parts.PartRequestRecord{
		ID:                row.ID,
		PartNo:            row.PartNo,
		PartName:          row.PartName,
		MaintenanceID:     row.MaintenanceID,
		RequestedQuantity: row.RequestedQuantity,
		ApproveQuantity:   row.ApproveQuantity,
		IsApproved:        row.IsApproved,
		InstallQuantity:   row.InstallQuantity,
		IsRemovalPart:     row.IsRemovalPart,
		IsLocalPart:       row.IsLocalPart,
		ConsumedQuantity:  row.ConsumedQuantity,
	}
}
