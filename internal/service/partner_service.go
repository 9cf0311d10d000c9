package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/export"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/storage"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

const (
	partnerLogoFolder   = "partners"
	approvedPartnersKey = "public:partners:approved"
	approvedPartnersTTL = 5 * time.Minute
)

// LogoUpload carries the multipart logo stream alongside its metadata.
type LogoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PartnerService exposes partner CRUD, the approval workflow and the cached
// public listing.
type PartnerService struct {
	partners   repository.PartnerRepository
	assets     storage.AssetStore
	cache      *redis.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPartnerService wires the partner service. cache may be nil when Redis is
// not configured.
func NewPartnerService(partners repository.PartnerRepository, assets storage.AssetStore, cache *redis.Client, dispatcher events.Dispatcher, logger *zap.Logger) *PartnerService {
	return &PartnerService{
		partners:   partners,
		assets:     assets,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Create registers a partner in pending state. The logo, when present, is
// uploaded before the row is written so a failed upload never leaves a row
// pointing at a missing asset.
func (s *PartnerService) Create(ctx context.Context, req dto.CreatePartnerRequest, logo *LogoUpload) (*domain.Partner, error) {
	if existing, err := s.partners.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, errorutil.NewConflict("a partner with this email already exists")
	}

	partner := &domain.Partner{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.CompanyName,
		Website:     req.Website,
		Description: req.Description,
		PartnerType: req.PartnerType,
		Status:      domain.PartnerStatusPending,
	}

	if logo != nil {
		url, err := s.assets.Upload(ctx, partnerLogoFolder, logo.Filename, logo.ContentType, logo.Body, logo.Size)
		if err != nil {
			return nil, errorutil.NewUpstreamError("logo upload failed", err)
		}
		partner.LogoURL = &url
	}

	if err := s.partners.Create(ctx, partner); err != nil {
		return nil, errorutil.MapError(err)
	}

	s.invalidatePublicCache(ctx)
	if err := s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventPartnerCreated,
		EntityID:  partner.ID,
		Timestamp: time.Now(),
		Payload:   events.PartnerCreatedPayload{Name: partner.Name, Email: partner.Email},
	}); err != nil {
		s.logger.Warn("partner event publish failed", zap.Error(err))
	}

	s.logger.Info("partner created", zap.Int64("partner_id", partner.ID))
	return partner, nil
}

// Update mutates partner fields and optionally replaces the logo. The new
// asset is uploaded first; the old one is removed after the row write, and a
// failed removal only warns.
func (s *PartnerService) Update(ctx context.Context, id int64, req dto.UpdatePartnerRequest, logo *LogoUpload) (*domain.Partner, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}

	if req.Email != "" && req.Email != partner.Email {
		if other, err := s.partners.GetByEmail(ctx, req.Email); err == nil && other != nil && other.ID != id {
			return nil, errorutil.NewConflict("a partner with this email already exists")
		}
		partner.Email = req.Email
	}
	if req.Name != "" {
		partner.Name = req.Name
	}
	if req.Phone != nil {
		partner.Phone = req.Phone
	}
	if req.CompanyName != nil {
		partner.Company = req.CompanyName
	}
	if req.Website != nil {
		partner.Website = req.Website
	}
	if req.Description != nil {
		partner.Description = req.Description
	}
	if req.PartnerType != nil {
		partner.PartnerType = req.PartnerType
	}

	oldLogo := partner.LogoURL
	if logo != nil {
		url, err := s.assets.Upload(ctx, partnerLogoFolder, logo.Filename, logo.ContentType, logo.Body, logo.Size)
		if err != nil {
			return nil, errorutil.NewUpstreamError("logo upload failed", err)
		}
		partner.LogoURL = &url
	}

	if err := s.partners.Update(ctx, partner); err != nil {
		return nil, errorutil.MapError(err)
	}

	if logo != nil && oldLogo != nil {
		if err := s.assets.Delete(ctx, *oldLogo); err != nil {
			s.logger.Warn("stale logo removal failed",
				zap.Int64("partner_id", id), zap.Error(err))
		}
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("partner updated", zap.Int64("partner_id", id))
	return partner, nil
}

// UpdateStatus moves a partner through the approval workflow and publishes
// the transition.
func (s *PartnerService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Partner, error) {
	if !domain.ValidPartnerStatus(status) {
		return nil, errorutil.NewValidationError("invalid partner status", map[string]any{"status": status})
	}

	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	oldStatus := partner.Status
	newStatus := domain.PartnerStatus(status)

	if err := s.partners.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, errorutil.MapError(err)
	}
	partner.Status = newStatus

	s.invalidatePublicCache(ctx)
	if err := s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventPartnerStatusChanged,
		EntityID:  id,
		Timestamp: time.Now(),
		Payload:   events.PartnerStatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus},
	}); err != nil {
		s.logger.Warn("partner event publish failed", zap.Error(err))
	}

	s.logger.Info("partner status changed",
		zap.Int64("partner_id", id),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)))
	return partner, nil
}

// Get returns one partner.
func (s *PartnerService) Get(ctx context.Context, id int64) (*domain.Partner, error) {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return partner, nil
}

// List returns a filtered page of partners with its matching total.
func (s *PartnerService) List(ctx context.Context, page dto.PageRequest, status *domain.PartnerStatus, search *string) ([]domain.Partner, int64, error) {
	filter := repository.PartnerFilter{
		Status:     status,
		SearchTerm: search,
		Limit:      page.Limit,
		Offset:     page.Offset(),
	}

	var (
		rows  []domain.Partner
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.partners.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.partners.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, errorutil.MapError(err)
	}
	return rows, total, nil
}

// Delete removes a partner and then its logo asset. A failed asset removal
// only warns.
func (s *PartnerService) Delete(ctx context.Context, id int64) error {
	partner, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return errorutil.MapError(err)
	}

	if err := s.partners.Delete(ctx, id); err != nil {
		return errorutil.MapError(err)
	}

	if partner.LogoURL != nil {
		if err := s.assets.Delete(ctx, *partner.LogoURL); err != nil {
			s.logger.Warn("logo removal failed", zap.Int64("partner_id", id), zap.Error(err))
		}
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("partner deleted", zap.Int64("partner_id", id))
	return nil
}

// DeleteMany removes the given partners and their logo assets. Ids without a
// row are skipped.
func (s *PartnerService) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	rows, err := s.partners.ListByIDs(ctx, ids)
	if err != nil {
		return 0, errorutil.MapError(err)
	}

	affected, err := s.partners.DeleteMany(ctx, ids)
	if err != nil {
		return 0, errorutil.MapError(err)
	}

	for _, p := range rows {
		if p.LogoURL == nil {
			continue
		}
		if err := s.assets.Delete(ctx, *p.LogoURL); err != nil {
			s.logger.Warn("logo removal failed", zap.Int64("partner_id", p.ID), zap.Error(err))
		}
	}

	s.invalidatePublicCache(ctx)
	s.logger.Info("partners bulk deleted", zap.Int64("count", affected))
	return affected, nil
}

// UpdateStatusMany changes status on the given partners. Ids without a row
// are skipped.
func (s *PartnerService) UpdateStatusMany(ctx context.Context, ids []int64, status string) (int64, error) {
	if !domain.ValidPartnerStatus(status) {
		return 0, errorutil.NewValidationError("invalid partner status", map[string]any{"status": status})
	}
	affected, err := s.partners.UpdateStatusMany(ctx, ids, domain.PartnerStatus(status))
	if err != nil {
		return 0, errorutil.MapError(err)
	}
	s.invalidatePublicCache(ctx)
	return affected, nil
}

// ListApproved returns the public partner listing, served from cache when
// warm. Rows are re-checked for approved status so a stale cache entry can
// never leak an unapproved partner.
func (s *PartnerService) ListApproved(ctx context.Context) ([]domain.Partner, error) {
	if cached, ok := s.readPublicCache(ctx); ok {
		return filterApproved(cached), nil
	}

	rows, err := s.partners.ListByStatus(ctx, domain.PartnerStatusApproved)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	rows = filterApproved(rows)
	s.writePublicCache(ctx, rows)
	return rows, nil
}

// ExportCSV renders every partner as a CSV document.
func (s *PartnerService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.partners.ListAll(ctx)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	ptrs := make([]*domain.Partner, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return export.Partners(ptrs)
}

func filterApproved(rows []domain.Partner) []domain.Partner {
	out := rows[:0:0]
	for _, p := range rows {
		if p.Status == domain.PartnerStatusApproved {
			out = append(out, p)
		}
	}
	return out
}

func (s *PartnerService) readPublicCache(ctx context.Context) ([]domain.Partner, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, approvedPartnersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("partner cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var rows []domain.Partner
	if err := json.Unmarshal(raw, &rows); err != nil {
		s.logger.Warn("partner cache decode failed", zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (s *PartnerService) writePublicCache(ctx context.Context, rows []domain.Partner) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, approvedPartnersKey, raw, approvedPartnersTTL).Err(); err != nil {
		s.logger.Warn("partner cache write failed", zap.Error(err))
	}
}

func (s *PartnerService) invalidatePublicCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, approvedPartnersKey).Err(); err != nil {
		s.logger.Warn("partner cache invalidation failed", zap.Error(err))
	}
}
