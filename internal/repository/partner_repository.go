package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

// PartnerFilter captures admin partner list parameters.
type PartnerFilter struct {
	Status     *domain.PartnerStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// PartnerRepository encapsulates partner persistence.
type PartnerRepository interface {
	Create(ctx context.Context, partner *domain.Partner) error
	Update(ctx context.Context, partner *domain.Partner) error
	UpdateStatus(ctx context.Context, id int64, status domain.PartnerStatus) error
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Partner, error)
	List(ctx context.Context, filter PartnerFilter) ([]domain.Partner, error)
	Count(ctx context.Context, filter PartnerFilter) (int64, error)
	ListByStatus(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Partner, error)
	ListAll(ctx context.Context) ([]domain.Partner, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	UpdateStatusMany(ctx context.Context, ids []int64, status domain.PartnerStatus) (int64, error)
}

type partnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository instantiates repository.
func NewPartnerRepository(pool *pgxpool.Pool) PartnerRepository {
	return &partnerRepository{pool: pool}
}

const partnerColumns = `
        id, name, email, phone, company, logo_url, website, description,
        status, partner_type, created_at, updated_at`

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	const query = `
        INSERT INTO partners (name, email, phone, company, logo_url, website, description, status, partner_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		partner.Name,
		partner.Email,
		partner.Phone,
		partner.Company,
		partner.LogoURL,
		partner.Website,
		partner.Description,
		partner.Status,
		partner.PartnerType,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	const query = `
        UPDATE partners SET name=$1, email=$2, phone=$3, company=$4, logo_url=$5,
            website=$6, description=$7, status=$8, partner_type=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		partner.Name,
		partner.Email,
		partner.Phone,
		partner.Company,
		partner.LogoURL,
		partner.Website,
		partner.Description,
		partner.Status,
		partner.PartnerType,
		partner.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) UpdateStatus(ctx context.Context, id int64, status domain.PartnerStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE partners SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	return r.fetchSingle(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id=$1`, id)
}

// GetByEmail matches case-insensitively so duplicate detection cannot be
// dodged by changing letter case.
func (r *partnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	return r.fetchSingle(ctx, `SELECT `+partnerColumns+` FROM partners WHERE LOWER(email)=LOWER($1)`, email)
}

func (r *partnerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Partner, error) {
	var partner domain.Partner
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&partner.ID,
		&partner.Name,
		&partner.Email,
		&partner.Phone,
		&partner.Company,
		&partner.LogoURL,
		&partner.Website,
		&partner.Description,
		&partner.Status,
		&partner.PartnerType,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &partner, nil
}

func partnerWhere(filter PartnerFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		p := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(name) LIKE %s OR LOWER(email) LIKE %s OR LOWER(COALESCE(company,'')) LIKE %s)",
			p, p, p))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *partnerRepository) List(ctx context.Context, filter PartnerFilter) ([]domain.Partner, error) {
	where, args := partnerWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM partners WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		partnerColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartners(rows)
}

func (r *partnerRepository) Count(ctx context.Context, filter PartnerFilter) (int64, error) {
	where, args := partnerWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM partners WHERE %s`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *partnerRepository) ListByStatus(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE status=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartners(rows)
}

func (r *partnerRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartners(rows)
}

func (r *partnerRepository) ListAll(ctx context.Context) ([]domain.Partner, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartners(rows)
}

func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteMany removes the listed ids; absent ids are silent no-ops.
func (r *partnerRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// UpdateStatusMany updates the listed ids; absent ids are silent no-ops.
func (r *partnerRepository) UpdateStatusMany(ctx context.Context, ids []int64, status domain.PartnerStatus) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE partners SET status=$1, updated_at=NOW() WHERE id = ANY($2)`, status, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanPartners(rows pgx.Rows) ([]domain.Partner, error) {
	var result []domain.Partner
	for rows.Next() {
		var partner domain.Partner
		if err := rows.Scan(
			&partner.ID,
			&partner.Name,
			&partner.Email,
			&partner.Phone,
			&partner.Company,
			&partner.LogoURL,
			&partner.Website,
			&partner.Description,
			&partner.Status,
			&partner.PartnerType,
			&partner.CreatedAt,
			&partner.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, partner)
	}
	return result, rows.Err()
}
