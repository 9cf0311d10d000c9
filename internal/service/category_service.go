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

// CategoryService manages the two-level service taxonomy.
type CategoryService struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
}

// NewCategoryService wires the category service.
func NewCategoryService(categories repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.logger.Info("category created", zap.Int64("category_id", category.ID))
	return category, nil
}

// Update mutates a category. Empty request fields keep the stored value.
func (s *CategoryService) Update(ctx context.Context, id int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, errorutil.MapError(err)
	}
	return category, nil
}

// Get returns one category with its types nested.
func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return category, nil
}

// List returns a page of categories with their types nested.
func (s *CategoryService) List(ctx context.Context, page dto.PageRequest, search *string) ([]domain.Category, int64, error) {
	filter := repository.CategoryFilter{
		SearchTerm: search,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}

	var (
		rows  []domain.Category
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.categories.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.categories.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errorutil.MapError(err)
	}
	return rows, total, nil
}

// Delete removes a category. Categories still referenced by a service or a
// type are protected by foreign keys and fail.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return errorutil.MapError(err)
	}
	s.logger.Info("category deleted", zap.Int64("category_id", id))
	return nil
}

// CreateType adds a type under an existing category.
func (s *CategoryService) CreateType(ctx context.Context, req dto.CreateCategoryTypeRequest) (*domain.CategoryType, error) {
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, errorutil.MapError(err)
	}
	ct := &domain.CategoryType{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categories.CreateType(ctx, ct); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.logger.Info("category type created",
		zap.Int64("category_id", ct.CategoryID),
		zap.Int64("type_id", ct.ID))
	return ct, nil
}

// UpdateType mutates a category type. Empty request fields keep the stored
// value.
func (s *CategoryService) UpdateType(ctx context.Context, typeID int64, req dto.UpdateCategoryTypeRequest) (*domain.CategoryType, error) {
	ct, err := s.categories.GetType(ctx, typeID)
	if err != nil {
		return nil, errorutil.MapError(err)
	}

	if req.Name != "" {
		ct.Name = req.Name
	}
	if req.Description != nil {
		ct.Description = req.Description
	}
	if err := s.categories.UpdateType(ctx, ct); err != nil {
		return nil, errorutil.MapError(err)
	}
	return ct, nil
}

// DeleteType removes a category type.
func (s *CategoryService) DeleteType(ctx context.Context, id int64) error {
	if err := s.categories.DeleteType(ctx, id); err != nil {
		return errorutil.MapError(err)
	}
	s.logger.Info("category type deleted", zap.Int64("type_id", id))
	return nil
}
