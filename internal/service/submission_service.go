package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/export"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// SubmissionDashboard aggregates the admin landing widgets.
type SubmissionDashboard struct {
	Total   int64                   `json:"total"`
	ByType  map[string]int64        `json:"byType"`
	Pending int64                   `json:"pending"`
	Recent  []domain.FormSubmission `json:"recent"`
}

// SubmissionService exposes lead-capture reads and admin workflow mutations.
type SubmissionService struct {
	submissions repository.SubmissionRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewSubmissionService wires the submission service.
func NewSubmissionService(submissions repository.SubmissionRepository, dispatcher events.Dispatcher, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{submissions: submissions, dispatcher: dispatcher, logger: logger}
}

// Create records a public form submission and publishes the received event.
func (s *SubmissionService) Create(ctx context.Context, req dto.CreateSubmissionRequest) (*domain.FormSubmission, error) {
	if !domain.ValidSubmissionType(req.Type) {
		return nil, errorutil.NewValidationError("invalid submission type", map[string]any{"type": req.Type})
	}

	sub := &domain.FormSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Type:    domain.SubmissionType(req.Type),
		Service: req.Service,
		Message: req.Message,
		Status:  domain.SubmissionStatusPending,
		UserID:  req.UserID,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, errorutil.MapError(err)
	}

	if err := s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventSubmissionReceived,
		EntityID:  sub.ID,
		Timestamp: time.Now(),
		Payload: events.SubmissionReceivedPayload{
			Type:    sub.Type,
			Email:   sub.Email,
			Service: sub.Service,
		},
	}); err != nil {
		s.logger.Warn("submission event publish failed", zap.Error(err))
	}

	s.logger.Info("submission received",
		zap.Int64("submission_id", sub.ID),
		zap.String("type", string(sub.Type)))
	return sub, nil
}

// List returns a filtered page of submissions with its matching total.
func (s *SubmissionService) List(ctx context.Context, page dto.PageRequest, subType *domain.SubmissionType, status *domain.SubmissionStatus, search *string) ([]domain.FormSubmission, int64, error) {
	filter := repository.SubmissionFilter{
		Type:       subType,
		Status:     status,
		SearchTerm: search,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}

	var (
		rows  []domain.FormSubmission
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.submissions.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.submissions.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errorutil.MapError(err)
	}
	return rows, total, nil
}

// Get returns one submission with its user summary loaded.
func (s *SubmissionService) Get(ctx context.Context, id int64) (*domain.FormSubmission, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return sub, nil
}

// UpdateStatus moves a submission through the handling workflow.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.FormSubmission, error) {
	if !domain.ValidSubmissionStatus(status) {
		return nil, errorutil.NewValidationError("invalid submission status", map[string]any{"status": status})
	}
	if err := s.submissions.UpdateStatus(ctx, id, domain.SubmissionStatus(status)); err != nil {
		return nil, errorutil.MapError(err)
	}
	return s.Get(ctx, id)
}

// Delete removes one submission.
func (s *SubmissionService) Delete(ctx context.Context, id int64) error {
	if err := s.submissions.Delete(ctx, id); err != nil {
		return errorutil.MapError(err)
	}
	s.logger.Info("submission deleted", zap.Int64("submission_id", id))
	return nil
}

// DeleteMany removes the given submissions. Ids without a row are skipped.
func (s *SubmissionService) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	affected, err := s.submissions.DeleteMany(ctx, ids)
	if err != nil {
		return 0, errorutil.MapError(err)
	}
	s.logger.Info("submissions bulk deleted", zap.Int64("count", affected))
	return affected, nil
}

// UpdateStatusMany changes status on the given submissions. Ids without a row
// are skipped.
func (s *SubmissionService) UpdateStatusMany(ctx context.Context, ids []int64, status string) (int64, error) {
	if !domain.ValidSubmissionStatus(status) {
		return 0, errorutil.NewValidationError("invalid submission status", map[string]any{"status": status})
	}
	affected, err := s.submissions.UpdateStatusMany(ctx, ids, domain.SubmissionStatus(status))
	if err != nil {
		return 0, errorutil.MapError(err)
	}
	return affected, nil
}

// Dashboard assembles the admin landing widgets concurrently. Any failing
// query fails the whole dashboard.
func (s *SubmissionService) Dashboard(ctx context.Context) (*SubmissionDashboard, error) {
	dash := &SubmissionDashboard{ByType: map[string]int64{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.submissions.CountByType(gctx)
		if err != nil {
			return err
		}
		for _, c := range counts {
			dash.ByType[string(c.Type)] = c.Count
			dash.Total += c.Count
		}
		return nil
	})
	g.Go(func() error {
		pending := domain.SubmissionStatusPending
		count, err := s.submissions.Count(gctx, repository.SubmissionFilter{Status: &pending})
		if err != nil {
			return err
		}
		dash.Pending = count
		return nil
	})
	g.Go(func() error {
		recent, err := s.submissions.List(gctx, repository.SubmissionFilter{Limit: 10})
		if err != nil {
			return err
		}
		dash.Recent = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errorutil.MapError(err)
	}
	return dash, nil
}

// ExportCSV renders every submission as a CSV document.
func (s *SubmissionService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.submissions.ListAll(ctx)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	ptrs := make([]*domain.FormSubmission, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return export.Submissions(ptrs)
}
