package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

func newSubmissionService(repo repository.SubmissionRepository) *SubmissionService {
	return NewSubmissionService(repo, events.NewInMemoryDispatcher(), zap.NewNop())
}

func TestCreateSubmissionRejectsUnknownType(t *testing.T) {
	created := false
	repo := &fakeSubmissionRepo{
		create: func(ctx context.Context, sub *domain.FormSubmission) error {
			created = true
			return nil
		},
	}
	svc := newSubmissionService(repo)

	_, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{
		Name: "Jo", Email: "jo@example.com", Type: "sales_call",
	})
	require.Error(t, err)
	require.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	require.False(t, created)
}

func TestCreateSubmissionStartsPendingAndPublishes(t *testing.T) {
	repo := &fakeSubmissionRepo{
		create: func(ctx context.Context, sub *domain.FormSubmission) error {
			sub.ID = 11
			return nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var received []events.Event
	dispatcher.Subscribe(events.EventSubmissionReceived, func(ctx context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})
	svc := NewSubmissionService(repo, dispatcher, zap.NewNop())

	sub, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{
		Name: "Jo", Email: "jo@example.com", Type: "demo",
	})
	require.NoError(t, err)
	require.Equal(t, domain.SubmissionStatusPending, sub.Status)
	require.Len(t, received, 1)
	require.Equal(t, int64(11), received[0].EntityID)
}

func TestUpdateStatusManyRejectsUnknownStatus(t *testing.T) {
	called := false
	repo := &fakeSubmissionRepo{
		updateStatusMany: func(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error) {
			called = true
			return 0, nil
		},
	}
	svc := newSubmissionService(repo)

	_, err := svc.UpdateStatusMany(context.Background(), []int64{1}, "resolved")
	require.Error(t, err)
	require.False(t, called)
}

func TestUpdateStatusManySkipsAbsentSubmissionIDs(t *testing.T) {
	repo := &fakeSubmissionRepo{
		updateStatusMany: func(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error) {
			require.Equal(t, []int64{1, 2, 999}, ids)
			return 2, nil
		},
	}
	svc := newSubmissionService(repo)

	affected, err := svc.UpdateStatusMany(context.Background(), []int64{1, 2, 999}, "completed")
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)
}

func TestDashboardAggregates(t *testing.T) {
	repo := &fakeSubmissionRepo{
		countByType: func(ctx context.Context) ([]repository.TypeCount, error) {
			return []repository.TypeCount{
				{Type: domain.SubmissionTypeDemo, Count: 4},
				{Type: domain.SubmissionTypeContact, Count: 6},
			}, nil
		},
		count: func(ctx context.Context, filter repository.SubmissionFilter) (int64, error) {
			require.NotNil(t, filter.Status)
			return 3, nil
		},
		list: func(ctx context.Context, filter repository.SubmissionFilter) ([]domain.FormSubmission, error) {
			require.Equal(t, 10, filter.Limit)
			return []domain.FormSubmission{{ID: 1}}, nil
		},
	}
	svc := newSubmissionService(repo)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(10), dash.Total)
	require.Equal(t, int64(3), dash.Pending)
	require.Equal(t, int64(4), dash.ByType["demo"])
	require.Len(t, dash.Recent, 1)
}
