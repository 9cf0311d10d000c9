package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
)

// CategoryFilter captures admin category list parameters.
type CategoryFilter struct {
	SearchTerm *string
	Limit      int
	Offset     int
}

// CategoryRepository encapsulates the taxonomy persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]domain.Category, error)
	Count(ctx context.Context, filter CategoryFilter) (int64, error)
	Delete(ctx context.Context, id int64) error

	CreateType(ctx context.Context, ct *domain.CategoryType) error
	GetType(ctx context.Context, id int64) (*domain.CategoryType, error)
	UpdateType(ctx context.Context, ct *domain.CategoryType) error
	ListTypes(ctx context.Context, categoryID int64) ([]domain.CategoryType, error)
	DeleteType(ctx context.Context, id int64) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, description)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Description,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE categories SET name=$1, description=$2, updated_at=NOW() WHERE id=$3`,
		category.Name, category.Description, category.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM categories WHERE id=$1`, id,
	).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}

	types, err := r.ListTypes(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.Types = types
	return &category, nil
}

func categoryWhere(filter CategoryFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		clauses = append(clauses, fmt.Sprintf("LOWER(name) LIKE $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// List returns categories with their types nested, newest first.
func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter) ([]domain.Category, error) {
	where, args := categoryWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT id, name, description, created_at, updated_at
        FROM categories WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	ids := []int64{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, category)
		ids = append(ids, category.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	typeRows, err := r.pool.Query(ctx, `
        SELECT id, category_id, name, description, created_at, updated_at
        FROM category_types WHERE category_id = ANY($1) ORDER BY created_at DESC`, ids)
	if err != nil {
		return nil, err
	}
	defer typeRows.Close()

	byCategory := make(map[int64][]domain.CategoryType)
	for typeRows.Next() {
		var ct domain.CategoryType
		if err := typeRows.Scan(
			&ct.ID,
			&ct.CategoryID,
			&ct.Name,
			&ct.Description,
			&ct.CreatedAt,
			&ct.UpdatedAt,
		); err != nil {
			return nil, err
		}
		byCategory[ct.CategoryID] = append(byCategory[ct.CategoryID], ct)
	}
	if err := typeRows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		result[i].Types = byCategory[result[i].ID]
	}
	return result, nil
}

func (r *categoryRepository) Count(ctx context.Context, filter CategoryFilter) (int64, error) {
	where, args := categoryWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM categories WHERE %s`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) CreateType(ctx context.Context, ct *domain.CategoryType) error {
	const query = `
        INSERT INTO category_types (category_id, name, description)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ct.CategoryID,
		ct.Name,
		ct.Description,
	).Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt)
}

func (r *categoryRepository) GetType(ctx context.Context, id int64) (*domain.CategoryType, error) {
	var ct domain.CategoryType
	err := r.pool.QueryRow(ctx, `
        SELECT id, category_id, name, description, created_at, updated_at
        FROM category_types WHERE id=$1`, id).Scan(
		&ct.ID,
		&ct.CategoryID,
		&ct.Name,
		&ct.Description,
		&ct.CreatedAt,
		&ct.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *categoryRepository) UpdateType(ctx context.Context, ct *domain.CategoryType) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE category_types SET name=$1, description=$2, updated_at=NOW() WHERE id=$3`,
		ct.Name, ct.Description, ct.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) ListTypes(ctx context.Context, categoryID int64) ([]domain.CategoryType, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, category_id, name, description, created_at, updated_at
        FROM category_types WHERE category_id=$1 ORDER BY created_at DESC`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CategoryType
	for rows.Next() {
		var ct domain.CategoryType
		if err := rows.Scan(
			&ct.ID,
			&ct.CategoryID,
			&ct.Name,
			&ct.Description,
			&ct.CreatedAt,
			&ct.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ct)
	}
	return result, rows.Err()
}

func (r *categoryRepository) DeleteType(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM category_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
