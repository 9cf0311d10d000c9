package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// MonthBucket is a year-month submission count, e.g. {"2024-03", 7}.
type MonthBucket struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// TopService pairs a service name with its submission count.
type TopService struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

// Analytics is the admin analytics payload.
type Analytics struct {
	TotalSubmissions   int64            `json:"totalSubmissions"`
	SubmissionsByType  map[string]int64 `json:"submissionsByType"`
	SubmissionsByMonth []MonthBucket    `json:"submissionsByMonth"`
	TopServices        []TopService     `json:"topServices"`
}

// Stats is the admin stats payload. Every field defaults to zero when its
// count fails.
type Stats struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
	DemoRequests     int64 `json:"demoRequests"`
	ContactForms     int64 `json:"contactForms"`
	GetInTouch       int64 `json:"getInTouch"`
	TotalUsers       int64 `json:"totalUsers"`
	TotalPartners    int64 `json:"totalPartners"`
	ApprovedPartners int64 `json:"approvedPartners"`
	PendingPartners  int64 `json:"pendingPartners"`
	TotalServices    int64 `json:"totalServices"`
	ActiveServices   int64 `json:"activeServices"`
}

// AnalyticsService derives aggregate views from the persisted entities.
type AnalyticsService struct {
	submissions repository.SubmissionRepository
	users       repository.UserRepository
	partners    repository.PartnerRepository
	services    repository.ServiceRepository
	logger      *zap.Logger
}

// NewAnalyticsService wires the analytics service.
func NewAnalyticsService(
	submissions repository.SubmissionRepository,
	users repository.UserRepository,
	partners repository.PartnerRepository,
	services repository.ServiceRepository,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		submissions: submissions,
		users:       users,
		partners:    partners,
		services:    services,
		logger:      logger,
	}
}

// Analytics assembles the analytics payload. Constituent queries run
// concurrently and any failure fails the whole request.
func (s *AnalyticsService) Analytics(ctx context.Context) (*Analytics, error) {
	out := &Analytics{SubmissionsByType: map[string]int64{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.submissions.CountByType(gctx)
		if err != nil {
			return err
		}
		for _, c := range counts {
			out.SubmissionsByType[string(c.Type)] = c.Count
			out.TotalSubmissions += c.Count
		}
		return nil
	})
	g.Go(func() error {
		times, err := s.submissions.CreationTimes(gctx)
		if err != nil {
			return err
		}
		out.SubmissionsByMonth = MonthBuckets(times)
		return nil
	})
	g.Go(func() error {
		counts, err := s.submissions.ServiceCounts(gctx)
		if err != nil {
			return err
		}
		out.TopServices = TopServices(counts, 5)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errorutil.MapError(err)
	}
	return out, nil
}

// Stats issues its ten counts concurrently. A failed count becomes zero and
// the failure is logged; the call itself never errors.
func (s *AnalyticsService) Stats(ctx context.Context) *Stats {
	demo := domain.SubmissionTypeDemo
	contact := domain.SubmissionTypeContact
	getInTouch := domain.SubmissionTypeGetInTouch
	approved := domain.PartnerStatusApproved
	pending := domain.PartnerStatusPending
	active := domain.ServiceStatusActive

	stats := &Stats{}
	counts := []struct {
		name string
		dest *int64
		run  func(context.Context) (int64, error)
	}{
		{"total_submissions", &stats.TotalSubmissions, func(ctx context.Context) (int64, error) {
			return s.submissions.Count(ctx, repository.SubmissionFilter{})
		}},
		{"demo_requests", &stats.DemoRequests, func(ctx context.Context) (int64, error) {
			return s.submissions.Count(ctx, repository.SubmissionFilter{Type: &demo})
		}},
		{"contact_forms", &stats.ContactForms, func(ctx context.Context) (int64, error) {
			return s.submissions.Count(ctx, repository.SubmissionFilter{Type: &contact})
		}},
		{"get_in_touch", &stats.GetInTouch, func(ctx context.Context) (int64, error) {
			return s.submissions.Count(ctx, repository.SubmissionFilter{Type: &getInTouch})
		}},
		{"total_users", &stats.TotalUsers, func(ctx context.Context) (int64, error) {
			return s.users.CountAll(ctx)
		}},
		{"total_partners", &stats.TotalPartners, func(ctx context.Context) (int64, error) {
			return s.partners.Count(ctx, repository.PartnerFilter{})
		}},
		{"approved_partners", &stats.ApprovedPartners, func(ctx context.Context) (int64, error) {
			return s.partners.Count(ctx, repository.PartnerFilter{Status: &approved})
		}},
		{"pending_partners", &stats.PendingPartners, func(ctx context.Context) (int64, error) {
			return s.partners.Count(ctx, repository.PartnerFilter{Status: &pending})
		}},
		{"total_services", &stats.TotalServices, func(ctx context.Context) (int64, error) {
			return s.services.Count(ctx, repository.ServiceFilter{})
		}},
		{"active_services", &stats.ActiveServices, func(ctx context.Context) (int64, error) {
			return s.services.Count(ctx, repository.ServiceFilter{Status: &active})
		}},
	}

	var wg sync.WaitGroup
	for i := range counts {
		c := counts[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := c.run(ctx)
			if err != nil {
				s.logger.Warn("stats count failed, using zero",
					zap.String("count", c.name), zap.Error(err))
				return
			}
			*c.dest = n
		}()
	}
	wg.Wait()
	return stats
}

// MonthBuckets groups creation times into year-month counts. Only months
// actually present appear, in chronological order.
func MonthBuckets(times []time.Time) []MonthBucket {
	counts := map[string]int64{}
	for _, t := range times {
		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		counts[key]++
	}

	buckets := make([]MonthBucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, MonthBucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })
	return buckets
}

// TopServices picks the n most requested services, highest count first, ties
// broken by service name ascending. Callers already exclude null services.
func TopServices(counts []repository.ServiceCount, n int) []TopService {
	sorted := make([]repository.ServiceCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Service < sorted[j].Service
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]TopService, len(sorted))
	for i, c := range sorted {
		out[i] = TopService{Service: c.Service, Count: c.Count}
	}
	return out
}
