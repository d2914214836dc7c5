package commands

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UpdateAvailabilityParams struct {
	ServiceType string
	ServiceID   uuid.UUID
	Date        time.Time
	Available   int32
}

type BulkUpdateParams struct {
	ServiceType string
	ServiceID   uuid.UUID
	From        time.Time
	To          time.Time
	Available   int32
}

// DateOutcome reports one date of a bulk update. Dates succeed or fail
// independently; a failed date never rolls back its neighbours.
type DateOutcome struct {
	Date  time.Time                `json:"date"`
	View  *queries.AvailabilityView `json:"availability,omitempty"`
	Error string                   `json:"error,omitempty"`
}

// BlockResult carries the count of confirmed bookings that survive the block
// so the caller can warn the admin about guests still expected that day.
type BlockResult struct {
	View              *queries.AvailabilityView
	SurvivingBookings int32
}

type AvailabilityCommands interface {
	Update(ctx context.Context, params UpdateAvailabilityParams) (*queries.AvailabilityView, error)
	BulkUpdate(ctx context.Context, params BulkUpdateParams) ([]DateOutcome, error)
	Block(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time) (*BlockResult, error)
}

type availabilityCommandsImpl struct {
	availRepo   AvailabilityRepository
	catalogRepo CatalogRepository
	logger      *slog.Logger
}

func NewAvailabilityCommands(
	availRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	logger *slog.Logger,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		availRepo:   availRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Update rewrites the remaining-units counter for one date. A date that was
// never scheduled is opened on the fly with the service's capacity as total.
func (c *availabilityCommandsImpl) Update(ctx context.Context, params UpdateAvailabilityParams) (*queries.AvailabilityView, error) {
	rec, err := c.loadOrOpen(ctx, params.ServiceType, params.ServiceID, params.Date)
	if err != nil {
		return nil, err
	}

	if err := rec.SetAvailable(params.Available); err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityRange)
	}

	snap, err := c.availRepo.Upsert(ctx, rec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToAvailabilityView(snap)
}

// BulkUpdate expands the inclusive date range and applies the same counter to
// every date in it, collecting per-date outcomes instead of failing the batch
// on the first bad date.
func (c *availabilityCommandsImpl) BulkUpdate(ctx context.Context, params BulkUpdateParams) ([]DateOutcome, error) {
	dateRange, err := availability.NewDateRange(params.From, params.To)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	days := dateRange.Days()
	outcomes := make([]DateOutcome, 0, len(days))
	for _, date := range days {
		view, err := c.Update(ctx, UpdateAvailabilityParams{
			ServiceType: params.ServiceType,
			ServiceID:   params.ServiceID,
			Date:        date,
			Available:   params.Available,
		})
		outcome := DateOutcome{Date: availability.DateOnly(date)}
		if err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.View = view
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Block zeroes the counter whether or not confirmed bookings exist for the
// date. Existing bookings stay confirmed; the result reports how many.
func (c *availabilityCommandsImpl) Block(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time) (*BlockResult, error) {
	rec, err := c.loadOrOpen(ctx, serviceType, serviceID, date)
	if err != nil {
		return nil, err
	}

	surviving := rec.Bookings()
	rec.Block()

	snap, err := c.availRepo.Block(ctx, serviceType, serviceID, availability.DateOnly(date), rec.Total())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if surviving > 0 {
		c.logger.Warn("blocked a date with confirmed bookings",
			slog.String("service_type", serviceType),
			slog.String("service_id", serviceID.String()),
			slog.Time("date", snap.Date),
			slog.Int("surviving_bookings", int(surviving)),
		)
	}

	view, err := snapshotToAvailabilityView(snap)
	if err != nil {
		return nil, err
	}
	return &BlockResult{View: view, SurvivingBookings: surviving}, nil
}

func (c *availabilityCommandsImpl) loadOrOpen(ctx context.Context, serviceType string, serviceID uuid.UUID, date time.Time) (*availability.Record, error) {
	snap, err := c.availRepo.Find(ctx, serviceType, serviceID, availability.DateOnly(date))
	if err == nil {
		return snap.ToDomain()
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	svc, err := c.catalogRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if svc.ServiceType != serviceType {
		return nil, errs.ErrServiceNotFound
	}

	service, err := svc.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rec, err := availability.NewRecord(service.ServiceType(), serviceID, date, service.Capacity())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return rec, nil
}

func snapshotToAvailabilityView(snap *AvailabilitySnapshot) (*queries.AvailabilityView, error) {
	var view queries.AvailabilityView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to convert availability snapshot")
	}
	view.Bookings = snap.Total - snap.Available
	return &view, nil
}
