package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

// UserFilter captures admin user list parameters.
type UserFilter struct {
	SearchTerm *string
	Limit      int
	Offset     int
}

// UserWithCount pairs a user with its submission count for admin listings.
type UserWithCount struct {
	domain.User
	SubmissionCount int64 `json:"submissionCount"`
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateRefreshToken(ctx context.Context, id int64, token *string) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]UserWithCount, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `
        id, email, password_hash, firstname, role, address, company_name,
        gst_number, refresh_token, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, password_hash, firstname, role, address, company_name, gst_number)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Firstname,
		user.Role,
		user.Address,
		user.CompanyName,
		user.GSTNumber,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, firstname=$2, address=$3, company_name=$4, gst_number=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Firstname,
		user.Address,
		user.CompanyName,
		user.GSTNumber,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, id int64, token *string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE users SET refresh_token=$1, updated_at=NOW() WHERE id=$2`, token, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchSingle(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email)=LOWER($1)`, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Firstname,
		&user.Role,
		&user.Address,
		&user.CompanyName,
		&user.GSTNumber,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func userWhere(filter UserFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		p := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(u.email) LIKE %s OR LOWER(COALESCE(u.firstname,'')) LIKE %s OR LOWER(COALESCE(u.company_name,'')) LIKE %s)",
			p, p, p))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]UserWithCount, error) {
	where, args := userWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT u.id, u.email, u.password_hash, u.firstname, u.role, u.address,
               u.company_name, u.gst_number, u.refresh_token, u.created_at, u.updated_at,
               COUNT(s.id)
        FROM users u
        LEFT JOIN form_submissions s ON s.user_id = u.id
        WHERE %s
        GROUP BY u.id
        ORDER BY u.created_at DESC LIMIT %d OFFSET %d`, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []UserWithCount
	for rows.Next() {
		var uc UserWithCount
		if err := rows.Scan(
			&uc.ID,
			&uc.Email,
			&uc.PasswordHash,
			&uc.Firstname,
			&uc.Role,
			&uc.Address,
			&uc.CompanyName,
			&uc.GSTNumber,
			&uc.RefreshToken,
			&uc.CreatedAt,
			&uc.UpdatedAt,
			&uc.SubmissionCount,
		); err != nil {
			return nil, err
		}
		result = append(result, uc)
	}
	return result, rows.Err()
}

func (r *userRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	where, args := userWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users u WHERE %s`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, UserFilter{})
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.Firstname,
			&user.Role,
			&user.Address,
			&user.CompanyName,
			&user.GSTNumber,
			&user.RefreshToken,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
