package commands

import (
	"context"

	"stayhub/internal/domain/catalog"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateServiceParams struct {
	ServiceType    string
	Name           string
	Capacity       int32
	BasePriceCents int64
}

type UpdateServiceParams struct {
	Name           string
	Capacity       int32
	BasePriceCents int64
	IsActive       bool
}

type CatalogCommands interface {
	Create(ctx context.Context, params CreateServiceParams) (*queries.ServiceView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateServiceParams) (*queries.ServiceView, error)
}

type catalogCommandsImpl struct {
	catalogRepo CatalogRepository
}

func NewCatalogCommands(catalogRepo CatalogRepository) CatalogCommands {
	return &catalogCommandsImpl{catalogRepo: catalogRepo}
}

func (c *catalogCommandsImpl) Create(ctx context.Context, params CreateServiceParams) (*queries.ServiceView, error) {
	serviceType, err := catalog.NewServiceType(params.ServiceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := catalog.NewService(serviceType, params.Name, params.Capacity, params.BasePriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := c.catalogRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap, err := c.catalogRepo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToServiceView(snap)
}

// Update replaces the mutable fields. Capacity changes affect only dates
// scheduled afterwards; already stored ledger rows keep their own total.
func (c *catalogCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateServiceParams) (*queries.ServiceView, error) {
	existing, err := c.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	serviceType, err := catalog.NewServiceType(existing.ServiceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := catalog.NewService(serviceType, params.Name, params.Capacity, params.BasePriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	updated := catalog.ReconstructService(
		existing.ID, serviceType, entity.Name(), entity.Capacity(), entity.BasePriceCents(),
		params.IsActive, existing.CreatedAt, existing.UpdatedAt,
	)

	snap, err := c.catalogRepo.Update(ctx, updated)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToServiceView(snap)
}

func snapshotToServiceView(snap *ServiceSnapshot) (*queries.ServiceView, error) {
	var view queries.ServiceView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to convert service snapshot")
	}
	return &view, nil
}
