package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// CatalogService exposes reads and workflow mutations over the service
// catalog. Catalog entries are seeded out of band; create and update are not
// offered here.
type CatalogService struct {
	services repository.ServiceRepository
	logger   *zap.Logger
}

// NewCatalogService wires the catalog service.
func NewCatalogService(services repository.ServiceRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{services: services, logger: logger}
}

// Get returns one catalog entry with its relations loaded.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return svc, nil
}

// List returns a filtered page of catalog entries with its matching total.
func (s *CatalogService) List(ctx context.Context, page dto.PageRequest, filter repository.ServiceFilter) ([]domain.Service, int64, error) {
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	var (
		rows  []domain.Service
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.services.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.services.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errorutil.MapError(err)
	}
	return rows, total, nil
}

// ListActive returns the public catalog, active entries only, ordered by
// priority.
func (s *CatalogService) ListActive(ctx context.Context, page dto.PageRequest, filter repository.ServiceFilter) ([]domain.Service, int64, error) {
	active := domain.ServiceStatusActive
	filter.Status = &active
	return s.List(ctx, page, filter)
}

// UpdateStatus toggles a catalog entry between active and inactive.
func (s *CatalogService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Service, error) {
	if status != string(domain.ServiceStatusActive) && status != string(domain.ServiceStatusInactive) {
		return nil, errorutil.NewValidationError("invalid service status", map[string]any{"status": status})
	}
	if err := s.services.UpdateStatus(ctx, id, domain.ServiceStatus(status)); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.logger.Info("service status changed",
		zap.Int64("service_id", id), zap.String("status", status))
	return s.Get(ctx, id)
}

// Delete removes a catalog entry.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return errorutil.MapError(err)
	}
	s.logger.Info("service deleted", zap.Int64("service_id", id))
	return nil
}
