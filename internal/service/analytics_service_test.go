package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
)

func TestMonthBucketsNoGapFilling(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	buckets := MonthBuckets(times)
	require.Len(t, buckets, 2)
	require.Equal(t, MonthBucket{Month: "2024-01", Count: 2}, buckets[0])
	require.Equal(t, MonthBucket{Month: "2024-03", Count: 1}, buckets[1])
}

func TestMonthBucketsEmpty(t *testing.T) {
	require.Empty(t, MonthBuckets(nil))
}

func TestTopServicesOrderAndTieBreak(t *testing.T) {
	counts := []repository.ServiceCount{
		{Service: "vps", Count: 3},
		{Service: "backup", Count: 5},
		{Service: "cdn", Count: 3},
		{Service: "dns", Count: 1},
	}

	top := TopServices(counts, 3)
	require.Equal(t, []TopService{
		{Service: "backup", Count: 5},
		{Service: "cdn", Count: 3},
		{Service: "vps", Count: 3},
	}, top)
}

func TestTopServicesShorterThanN(t *testing.T) {
	counts := []repository.ServiceCount{{Service: "vps", Count: 2}}
	require.Len(t, TopServices(counts, 5), 1)
}

type fakeSubmissionRepo struct {
	repository.SubmissionRepository

	count            func(ctx context.Context, filter repository.SubmissionFilter) (int64, error)
	countByType      func(ctx context.Context) ([]repository.TypeCount, error)
	creationTimes    func(ctx context.Context) ([]time.Time, error)
	serviceCounts    func(ctx context.Context) ([]repository.ServiceCount, error)
	create           func(ctx context.Context, sub *domain.FormSubmission) error
	list             func(ctx context.Context, filter repository.SubmissionFilter) ([]domain.FormSubmission, error)
	updateStatusMany func(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error)
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, sub *domain.FormSubmission) error {
	return f.create(ctx, sub)
}

func (f *fakeSubmissionRepo) List(ctx context.Context, filter repository.SubmissionFilter) ([]domain.FormSubmission, error) {
	return f.list(ctx, filter)
}

func (f *fakeSubmissionRepo) UpdateStatusMany(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error) {
	return f.updateStatusMany(ctx, ids, status)
}

func (f *fakeSubmissionRepo) Count(ctx context.Context, filter repository.SubmissionFilter) (int64, error) {
	return f.count(ctx, filter)
}

func (f *fakeSubmissionRepo) CountByType(ctx context.Context) ([]repository.TypeCount, error) {
	return f.countByType(ctx)
}

func (f *fakeSubmissionRepo) CreationTimes(ctx context.Context) ([]time.Time, error) {
	return f.creationTimes(ctx)
}

func (f *fakeSubmissionRepo) ServiceCounts(ctx context.Context) ([]repository.ServiceCount, error) {
	return f.serviceCounts(ctx)
}

type fakeUserRepo struct {
	repository.UserRepository
	countAll func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return f.countAll(ctx)
}

type fakePartnerCountRepo struct {
	repository.PartnerRepository
	count func(ctx context.Context, filter repository.PartnerFilter) (int64, error)
}

func (f *fakePartnerCountRepo) Count(ctx context.Context, filter repository.PartnerFilter) (int64, error) {
	return f.count(ctx, filter)
}

type fakeServiceRepo struct {
	repository.ServiceRepository
	count func(ctx context.Context, filter repository.ServiceFilter) (int64, error)
}

func (f *fakeServiceRepo) Count(ctx context.Context, filter repository.ServiceFilter) (int64, error) {
	return f.count(ctx, filter)
}

func TestStatsSubstitutesZeroForFailedCount(t *testing.T) {
	submissions := &fakeSubmissionRepo{
		count: func(ctx context.Context, filter repository.SubmissionFilter) (int64, error) {
			if filter.Type == nil && filter.Status == nil {
				return 40, nil
			}
			return 10, nil
		},
	}
	// User counting is down; every other count answers.
	users := &fakeUserRepo{
		countAll: func(ctx context.Context) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}
	partners := &fakePartnerCountRepo{
		count: func(ctx context.Context, filter repository.PartnerFilter) (int64, error) {
			if filter.Status == nil {
				return 8, nil
			}
			return 4, nil
		},
	}
	services := &fakeServiceRepo{
		count: func(ctx context.Context, filter repository.ServiceFilter) (int64, error) {
			if filter.Status == nil {
				return 6, nil
			}
			return 5, nil
		},
	}

	svc := NewAnalyticsService(submissions, users, partners, services, zap.NewNop())
	stats := svc.Stats(context.Background())

	require.Equal(t, int64(0), stats.TotalUsers)
	require.Equal(t, int64(40), stats.TotalSubmissions)
	require.Equal(t, int64(10), stats.DemoRequests)
	require.Equal(t, int64(10), stats.ContactForms)
	require.Equal(t, int64(10), stats.GetInTouch)
	require.Equal(t, int64(8), stats.TotalPartners)
	require.Equal(t, int64(4), stats.ApprovedPartners)
	require.Equal(t, int64(4), stats.PendingPartners)
	require.Equal(t, int64(6), stats.TotalServices)
	require.Equal(t, int64(5), stats.ActiveServices)
}

func TestAnalyticsAggregates(t *testing.T) {
	submissions := &fakeSubmissionRepo{
		countByType: func(ctx context.Context) ([]repository.TypeCount, error) {
			return []repository.TypeCount{
				{Type: "contact", Count: 3},
				{Type: "demo", Count: 2},
			}, nil
		},
	}
	submissions.creationTimes = func(ctx context.Context) ([]time.Time, error) {
		return []time.Time{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}, nil
	}
	submissions.serviceCounts = func(ctx context.Context) ([]repository.ServiceCount, error) {
		return []repository.ServiceCount{{Service: "vps", Count: 4}}, nil
	}

	svc := NewAnalyticsService(submissions, nil, nil, nil, zap.NewNop())
	out, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), out.TotalSubmissions)
	require.Equal(t, int64(3), out.SubmissionsByType["contact"])
	require.Equal(t, []MonthBucket{{Month: "2024-02", Count: 1}}, out.SubmissionsByMonth)
	require.Equal(t, []TopService{{Service: "vps", Count: 4}}, out.TopServices)
}
