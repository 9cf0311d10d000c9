package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

// SubmissionFilter captures admin list parameters. A nil/empty field never
// narrows the result set.
type SubmissionFilter struct {
	Type       *domain.SubmissionType
	Status     *domain.SubmissionStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// TypeCount is a grouped count keyed by submission type.
type TypeCount struct {
	Type  domain.SubmissionType
	Count int64
}

// ServiceCount is a grouped count keyed by the free-text service field.
type ServiceCount struct {
	Service string
	Count   int64
}

// SubmissionRepository encapsulates form submission persistence.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.FormSubmission) error
	GetByID(ctx context.Context, id int64) (*domain.FormSubmission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]domain.FormSubmission, error)
	Count(ctx context.Context, filter SubmissionFilter) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.FormSubmission, error)
	ListAll(ctx context.Context) ([]domain.FormSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	UpdateStatusMany(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	CreationTimes(ctx context.Context) ([]time.Time, error)
	ServiceCounts(ctx context.Context) ([]ServiceCount, error)
}

type submissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository returns a Postgres-backed implementation.
func NewSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &submissionRepository{pool: pool}
}

const submissionColumns = `
        s.id, s.name, s.email, s.phone, s.type, s.service, s.message, s.status,
        s.user_id, s.created_at, s.updated_at, u.id, u.email, u.firstname`

const submissionBase = `
        SELECT ` + submissionColumns + `
        FROM form_submissions s
        LEFT JOIN users u ON u.id = s.user_id`

func (r *submissionRepository) Create(ctx context.Context, sub *domain.FormSubmission) error {
	const query = `
        INSERT INTO form_submissions (name, email, phone, type, service, message, status, user_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Type,
		sub.Service,
		sub.Message,
		sub.Status,
		sub.UserID,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *submissionRepository) GetByID(ctx context.Context, id int64) (*domain.FormSubmission, error) {
	rows, err := r.pool.Query(ctx, submissionBase+` WHERE s.id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs, err := scanSubmissions(rows)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &subs[0], nil
}

func submissionWhere(filter SubmissionFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("s.type=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("s.status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		p := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(s.name) LIKE %s OR LOWER(s.email) LIKE %s OR LOWER(COALESCE(s.phone,'')) LIKE %s OR LOWER(COALESCE(s.message,'')) LIKE %s)",
			p, p, p, p))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]domain.FormSubmission, error) {
	where, args := submissionWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY s.created_at DESC LIMIT %d OFFSET %d`,
		submissionBase, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *submissionRepository) Count(ctx context.Context, filter SubmissionFilter) (int64, error) {
	where, args := submissionWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM form_submissions s WHERE %s`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.FormSubmission, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`%s WHERE s.user_id=$1 ORDER BY s.created_at DESC LIMIT %d`, submissionBase, limit)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]domain.FormSubmission, error) {
	rows, err := r.pool.Query(ctx, submissionBase+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE form_submissions SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *submissionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM form_submissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteMany removes the listed ids; absent ids are silent no-ops.
func (r *submissionRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM form_submissions WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// UpdateStatusMany updates the listed ids; absent ids are silent no-ops.
func (r *submissionRepository) UpdateStatusMany(ctx context.Context, ids []int64, status domain.SubmissionStatus) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE form_submissions SET status=$1, updated_at=NOW() WHERE id = ANY($2)`, status, ids)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *submissionRepository) CountByType(ctx context.Context) ([]TypeCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT type, COUNT(*) FROM form_submissions GROUP BY type ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	return result, rows.Err()
}

// CreationTimes returns every submission creation timestamp; month bucketing
// happens in the analytics service.
func (r *submissionRepository) CreationTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT created_at FROM form_submissions ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// ServiceCounts returns grouped counts for the service field; rows with a
// NULL service are excluded.
func (r *submissionRepository) ServiceCounts(ctx context.Context) ([]ServiceCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT service, COUNT(*) FROM form_submissions WHERE service IS NOT NULL GROUP BY service`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceCount
	for rows.Next() {
		var sc ServiceCount
		if err := rows.Scan(&sc.Service, &sc.Count); err != nil {
			return nil, err
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}

func scanSubmissions(rows pgx.Rows) ([]domain.FormSubmission, error) {
	var result []domain.FormSubmission
	for rows.Next() {
		var (
			sub       domain.FormSubmission
			userID    *int64
			userEmail *string
			firstname *string
		)
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Type,
			&sub.Service,
			&sub.Message,
			&sub.Status,
			&sub.UserID,
			&sub.CreatedAt,
			&sub.UpdatedAt,
			&userID,
			&userEmail,
			&firstname,
		); err != nil {
			return nil, err
		}
		if userID != nil && userEmail != nil {
			sub.User = &domain.UserSummary{ID: *userID, Email: *userEmail, Firstname: firstname}
		}
		result = append(result, sub)
	}
	return result, rows.Err()
}
