package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/events"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

type fakePartnerRepo struct {
	repository.PartnerRepository

	getByEmail       func(ctx context.Context, email string) (*domain.Partner, error)
	getByID          func(ctx context.Context, id int64) (*domain.Partner, error)
	create           func(ctx context.Context, p *domain.Partner) error
	delete           func(ctx context.Context, id int64) error
	updateStatus     func(ctx context.Context, id int64, status domain.PartnerStatus) error
	updateStatusMany func(ctx context.Context, ids []int64, status domain.PartnerStatus) (int64, error)
	listByStatus     func(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error)

	created int
}

func (f *fakePartnerRepo) GetByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	return f.getByEmail(ctx, email)
}

func (f *fakePartnerRepo) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	return f.getByID(ctx, id)
}

func (f *fakePartnerRepo) Create(ctx context.Context, p *domain.Partner) error {
	f.created++
	return f.create(ctx, p)
}

func (f *fakePartnerRepo) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakePartnerRepo) UpdateStatus(ctx context.Context, id int64, status domain.PartnerStatus) error {
	return f.updateStatus(ctx, id, status)
}

func (f *fakePartnerRepo) UpdateStatusMany(ctx context.Context, ids []int64, status domain.PartnerStatus) (int64, error) {
	return f.updateStatusMany(ctx, ids, status)
}

func (f *fakePartnerRepo) ListByStatus(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error) {
	return f.listByStatus(ctx, status)
}

type fakeAssetStore struct {
	uploadErr error
	deleteErr error
	deleted   []string
}

func (f *fakeAssetStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://assets.example/" + folder + "/" + filename, nil
}

func (f *fakeAssetStore) Delete(ctx context.Context, assetURL string) error {
	f.deleted = append(f.deleted, assetURL)
	return f.deleteErr
}

func newPartnerService(repo repository.PartnerRepository, assets *fakeAssetStore) *PartnerService {
	return NewPartnerService(repo, assets, nil, events.NewInMemoryDispatcher(), zap.NewNop())
}

func TestCreatePartnerDuplicateEmailConflicts(t *testing.T) {
	existing := &domain.Partner{ID: 1, Email: "dup@example.com"}
	repo := &fakePartnerRepo{
		getByEmail: func(ctx context.Context, email string) (*domain.Partner, error) {
			return existing, nil
		},
		create: func(ctx context.Context, p *domain.Partner) error { return nil },
	}
	svc := newPartnerService(repo, &fakeAssetStore{})

	_, err := svc.Create(context.Background(), dto.CreatePartnerRequest{
		Name: "Acme", Email: "dup@example.com",
	}, nil)

	require.Error(t, err)
	require.Equal(t, 409, apperrors.ToDomainError(err).HTTPStatus)
	require.Zero(t, repo.created)
}

func TestUpdatePartnerStatusRejectsUnknownValue(t *testing.T) {
	statusCalled := false
	repo := &fakePartnerRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Partner, error) {
			return &domain.Partner{ID: id, Status: domain.PartnerStatusPending}, nil
		},
		updateStatus: func(ctx context.Context, id int64, status domain.PartnerStatus) error {
			statusCalled = true
			return nil
		},
	}
	svc := newPartnerService(repo, &fakeAssetStore{})

	_, err := svc.UpdateStatus(context.Background(), 1, "archived")
	require.Error(t, err)
	require.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	require.False(t, statusCalled)
}

func TestDeletePartnerSurvivesAssetDeleteFailure(t *testing.T) {
	logo := "https://assets.example/partners/logo.png"
	deleted := false
	repo := &fakePartnerRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Partner, error) {
			return &domain.Partner{ID: id, LogoURL: &logo}, nil
		},
		delete: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	assets := &fakeAssetStore{deleteErr: errors.New("bucket unavailable")}
	svc := newPartnerService(repo, assets)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.True(t, deleted)
	require.Equal(t, []string{logo}, assets.deleted)
}

func TestListApprovedFiltersDefensively(t *testing.T) {
	repo := &fakePartnerRepo{
		listByStatus: func(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error) {
			// A misbehaving source returning mixed statuses.
			return []domain.Partner{
				{ID: 1, Status: domain.PartnerStatusApproved},
				{ID: 2, Status: domain.PartnerStatusPending},
				{ID: 3, Status: domain.PartnerStatusRejected},
			}, nil
		},
	}
	svc := newPartnerService(repo, &fakeAssetStore{})

	rows, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].ID)
}

func TestUpdateStatusManySkipsAbsentIDs(t *testing.T) {
	repo := &fakePartnerRepo{
		updateStatusMany: func(ctx context.Context, ids []int64, status domain.PartnerStatus) (int64, error) {
			require.Equal(t, []int64{1, 2, 999}, ids)
			return 2, nil
		},
	}
	svc := newPartnerService(repo, &fakeAssetStore{})

	affected, err := svc.UpdateStatusMany(context.Background(), []int64{1, 2, 999}, "approved")
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)
}

func TestCreatePartnerUploadFailureWritesNoRow(t *testing.T) {
	repo := &fakePartnerRepo{
		getByEmail: func(ctx context.Context, email string) (*domain.Partner, error) {
			return nil, apperrors.NewNotFound("partner")
		},
		create: func(ctx context.Context, p *domain.Partner) error { return nil },
	}
	assets := &fakeAssetStore{uploadErr: errors.New("timeout")}
	svc := newPartnerService(repo, assets)

	_, err := svc.Create(context.Background(), dto.CreatePartnerRequest{
		Name: "Acme", Email: "new@example.com",
	}, &LogoUpload{Filename: "logo.png"})

	require.Error(t, err)
	require.Zero(t, repo.created)
}
