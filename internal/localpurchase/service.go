package localpurchase

import (
	"context"
	"fmt"
	"time"

	"github.com/avictorio/fieldparts/internal/api"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/avictorio/fieldparts/pkg/validate"
)

// API is the backend surface local purchase submission needs.
type API interface {
	CreateLocalPurchase(ctx context.Context, payload api.LocalPurchasePayload) error
}

// ServiceParams groups dependencies for the local purchase service.
type ServiceParams struct {
	API    API
	Logger *logger.Logger
}

type Service struct {
	api  API
	logg *logger.Logger
}

// NewService builds a local purchase service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.API == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: params.API, logg: params.Logger}, nil
}

// SubmitOptions carries the fields shared by every line in a submission.
type SubmitOptions struct {
	MaintenanceID int64
	EntryDate     time.Time
	IsArrived     bool
	IsRefurbish   bool
}

// SubmitAll validates every line up front, then submits them one request per
// line in order. The backend offers no batch endpoint here, so a failure on
// line k aborts the remainder and the error names the line that failed.
// Lines before k are already accepted server-side; resubmitting starts from
// the reported line.
func (s *Service) SubmitAll(ctx context.Context, items []*Item, opts SubmitOptions) error {
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no purchase lines to submit")
	}
	if opts.MaintenanceID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "maintenance ticket is required")
	}
	entryDate := opts.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	for idx, item := range items {
		if err := item.validate(); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err,
				fmt.Sprintf("line %d (%s): %s", idx+1, item.PartNo, pkgerrors.UserMessage(err)))
		}
	}

	ctx = s.logg.WithOperation(s.logg.WithTicketID(ctx, opts.MaintenanceID), "local_purchase")
	for idx, item := range items {
		payload := api.LocalPurchasePayload{
			PartNo:        item.PartNo,
			PartName:      item.PartName,
			Quantity:      item.Quantity().String(),
			Price:         item.PricePerUnit().String(),
			TotalPrice:    item.TotalPrice().StringFixed(2),
			MaintenanceID: opts.MaintenanceID,
			EntryDate:     entryDate.Format("2006-01-02"),
			IsArrived:     opts.IsArrived,
			IsRefurbish:   opts.IsRefurbish,
		}
		if err := validate.Struct(payload); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err,
				fmt.Sprintf("line %d (%s): %s", idx+1, item.PartNo, pkgerrors.UserMessage(err)))
		}
		if err := s.api.CreateLocalPurchase(ctx, payload); err != nil {
			s.logg.Error(s.logg.WithField(ctx, "line", idx+1), "local purchase line failed", err)
			code := pkgerrors.CodeServer
			if typed := pkgerrors.As(err); typed != nil {
				code = typed.Code()
			}
			return pkgerrors.Wrap(code, err,
				fmt.Sprintf("line %d (%s): %s", idx+1, item.PartNo, pkgerrors.UserMessage(err)))
		}
	}
	s.logg.Info(s.logg.WithField(ctx, "count", len(items)), "local purchase submitted")
	return nil
}
