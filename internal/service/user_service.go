package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/export"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// UserService exposes admin operations over accounts.
type UserService struct {
	users       repository.UserRepository
	submissions repository.SubmissionRepository
	logger      *zap.Logger
}

// NewUserService wires the user service.
func NewUserService(users repository.UserRepository, submissions repository.SubmissionRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, submissions: submissions, logger: logger}
}

// List returns a page of accounts with per-user submission counts.
func (s *UserService) List(ctx context.Context, page dto.PageRequest, search *string) ([]repository.UserWithCount, int64, error) {
	filter := repository.UserFilter{
		SearchTerm: search,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}

	var (
		rows  []repository.UserWithCount
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.users.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.users.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errorutil.MapError(err)
	}
	return rows, total, nil
}

// Get returns one account with its recent submissions attached.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, []domain.FormSubmission, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errorutil.MapError(err)
	}
	recent, err := s.submissions.ListByUser(ctx, id, 10)
	if err != nil {
		return nil, nil, errorutil.MapError(err)
	}
	return user, recent, nil
}

// Update mutates the editable profile fields. Empty request fields keep the
// stored value.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if other, err := s.users.GetByEmail(ctx, req.Email); err == nil && other != nil && other.ID != id {
			return nil, errorutil.NewConflict("an account with this email already exists")
		}
		user.Email = req.Email
	}
	if req.Firstname != "" {
		user.Firstname = &req.Firstname
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.CompanyName != nil {
		user.CompanyName = req.CompanyName
	}
	if req.GSTNumber != nil {
		user.GSTNumber = req.GSTNumber
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.logger.Info("user updated", zap.Int64("user_id", id))
	return user, nil
}

// Delete removes the account. Its submissions survive with a detached user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return errorutil.MapError(err)
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

// ExportCSV renders every account as a CSV document.
func (s *UserService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	ptrs := make([]*domain.User, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return export.Users(ptrs)
}
