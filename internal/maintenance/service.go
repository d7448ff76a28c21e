package maintenance

import (
	"context"
	"io"

	"github.com/avictorio/fieldparts/internal/api"
	"github.com/avictorio/fieldparts/pkg/enums"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
)

// API is the ticket surface of the backend client.
type API interface {
	GetMaintenance(ctx context.Context, maintenanceID int64) (*api.MaintenanceDetail, error)
	UploadPhoto(ctx context.Context, params api.UploadPhotoParams) error
}

// ServiceParams groups dependencies for the maintenance service.
type ServiceParams struct {
	API    API
	Logger *logger.Logger
}

type Service struct {
	api  API
	logg *logger.Logger
}

// NewService builds a maintenance service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.API == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: params.API, logg: params.Logger}, nil
}

// Detail fetches the full ticket with its nested parts, comments and photos.
func (s *Service) Detail(ctx context.Context, maintenanceID int64) (*api.MaintenanceDetail, error) {
	if maintenanceID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maintenance id is required")
	}
	return s.api.GetMaintenance(s.logIDCtx(ctx, maintenanceID), maintenanceID)
}

// AttachPhoto uploads one photo to the ticket.
func (s *Service) AttachPhoto(ctx context.Context, maintenanceID int64, photoType enums.PhotoType, fileName string, content io.Reader) error {
	if maintenanceID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "maintenance id is required")
	}
	if !photoType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo type is invalid")
	}
	if content == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo content is required")
	}
	err := s.api.UploadPhoto(s.logIDCtx(ctx, maintenanceID), api.UploadPhotoParams{
		Type:          photoType,
		MaintenanceID: maintenanceID,
		FileName:      fileName,
		Photo:         content,
	})
	if err != nil {
		return err
	}
	s.logg.Info(s.logIDCtx(ctx, maintenanceID), "photo attached")
	return nil
}

func (s *Service) logIDCtx(ctx context.Context, maintenanceID int64) context.Context {
	return s.logg.WithTicketID(ctx, maintenanceID)
}
