package lifecycle

import (
	"context"

	"github.com/avictorio/fieldparts/internal/parts"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
)

// API is the slice of the backend client the lifecycle needs.
type API interface {
	ListWallet(ctx context.Context) ([]parts.PartRequestRecord, error)
	RequestParts(ctx context.Context, lines []parts.RequestLine) ([]parts.PartRequestRecord, error)
	ApproveParts(ctx context.Context, decisions []parts.ApproveDecision) error
	InstallParts(ctx context.Context, orders []parts.InstallOrder) error
	RemoveParts(ctx context.Context, orders []parts.RemoveOrder) error
	AssignParts(ctx context.Context, lines []parts.AssignLine) error
}

// ServiceParams groups dependencies for the lifecycle service.
type ServiceParams struct {
	API    API
	Logger *logger.Logger
}

// Service drives part request records through their lifecycle. Every
// transition validates wholesale first, then makes exactly one network call.
// Nothing is applied optimistically, so a failed call leaves no local state
// to roll back; the error simply carries the message to display.
type Service interface {
	Wallet(ctx context.Context) ([]parts.PartRequestRecord, error)
	Request(ctx context.Context, lines []parts.RequestLine) ([]parts.PartRequestRecord, error)
	Approve(ctx context.Context, decisions []parts.ApproveDecision, records []parts.PartRequestRecord) error
	Install(ctx context.Context, orders []parts.InstallOrder, records []parts.PartRequestRecord) error
	Remove(ctx context.Context, orders []parts.RemoveOrder) error
	Assign(ctx context.Context, lines []parts.AssignLine) error
}

type service struct {
	api  API
	logg *logger.Logger
}

// NewService builds a lifecycle service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.API == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{api: params.API, logg: params.Logger}, nil
}

// Wallet fetches the caller's current record set.
func (s *service) Wallet(ctx context.Context) ([]parts.PartRequestRecord, error) {
	return s.api.ListWallet(ctx)
}

// Request creates new part request records with fixed requested quantities.
func (s *service) Request(ctx context.Context, lines []parts.RequestLine) ([]parts.PartRequestRecord, error) {
	if err := parts.ValidateRequestLines(lines); err != nil {
		return nil, err
	}
	created, err := s.api.RequestParts(ctx, lines)
	if err != nil {
		return nil, err
	}
	ctx = s.logg.WithOperation(ctx, "request")
	s.logg.Info(s.logg.WithField(ctx, "count", len(created)), "part request submitted")
	return created, nil
}

// Approve submits an approval batch. The records argument is the wallet the
// decisions were made against; an invalid entry rejects the whole batch
// before any request is sent.
func (s *service) Approve(ctx context.Context, decisions []parts.ApproveDecision, records []parts.PartRequestRecord) error {
	if err := parts.ValidateApproveBatch(decisions, parts.RecordIndex(records)); err != nil {
		return err
	}
	if err := s.api.ApproveParts(ctx, decisions); err != nil {
		return err
	}
	ctx = s.logg.WithOperation(ctx, "approve")
	s.logg.Info(s.logg.WithField(ctx, "count", len(decisions)), "approval submitted")
	return nil
}

// Install submits an installation batch against approved records.
func (s *service) Install(ctx context.Context, orders []parts.InstallOrder, records []parts.PartRequestRecord) error {
	if err := parts.ValidateInstallBatch(orders, parts.RecordIndex(records)); err != nil {
		return err
	}
	if err := s.api.InstallParts(ctx, orders); err != nil {
		return err
	}
	ctx = s.logg.WithOperation(ctx, "install")
	s.logg.Info(s.logg.WithField(ctx, "count", len(orders)), "installation submitted")
	return nil
}

// Remove submits a removal batch referencing inventory directly. This is the
// separate track that takes parts off the asset; it never touches existing
// request records.
func (s *service) Remove(ctx context.Context, orders []parts.RemoveOrder) error {
	if err := parts.ValidateRemoveOrders(orders); err != nil {
		return err
	}
	if err := s.api.RemoveParts(ctx, orders); err != nil {
		return err
	}
	ctx = s.logg.WithOperation(ctx, "remove")
	s.logg.Info(s.logg.WithField(ctx, "count", len(orders)), "removal submitted")
	return nil
}

// Assign hands parts to another engineer on the ticket.
func (s *service) Assign(ctx context.Context, lines []parts.AssignLine) error {
	if err := parts.ValidateAssignLines(lines); err != nil {
		return err
	}
	if err := s.api.AssignParts(ctx, lines); err != nil {
		return err
	}
	ctx = s.logg.WithOperation(ctx, "assign")
	s.logg.Info(s.logg.WithField(ctx, "count", len(lines)), "assignment submitted")
	return nil
}
