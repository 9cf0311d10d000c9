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

// ServiceFilter captures catalog list parameters. CategoryName matches the
// related category by name, case-insensitively, the way the admin UI filters.
type ServiceFilter struct {
	Status         *domain.ServiceStatus
	CategoryName   *string
	Priority       *int
	CategoryTypeID *int64
	SearchTerm     *string
	Limit          int
	Offset         int
}

// ServiceRepository encapsulates catalog persistence.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
	Count(ctx context.Context, filter ServiceFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ServiceStatus) error
	Delete(ctx context.Context, id int64) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `
        sv.id, sv.name, sv.category_id, sv.category_type_id, sv.description,
        sv.price, sv.price_unit, sv.image_url, sv.features, sv.status, sv.priority,
        sv.owner_id, sv.created_at, sv.updated_at,
        c.id, c.name, c.description, c.created_at, c.updated_at,
        ct.id, ct.category_id, ct.name, ct.description, ct.created_at, ct.updated_at,
        u.id, u.email, u.firstname`

const serviceBase = `
        SELECT ` + serviceColumns + `
        FROM services sv
        LEFT JOIN categories c ON c.id = sv.category_id
        LEFT JOIN category_types ct ON ct.id = sv.category_type_id
        LEFT JOIN users u ON u.id = sv.owner_id`

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	rows, err := r.pool.Query(ctx, serviceBase+` WHERE sv.id=$1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services, err := scanServices(rows)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &services[0], nil
}

func serviceWhere(filter ServiceFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("sv.status=$%d", len(args)))
	}
	if filter.CategoryName != nil && strings.TrimSpace(*filter.CategoryName) != "" {
		args = append(args, strings.TrimSpace(*filter.CategoryName))
		clauses = append(clauses, fmt.Sprintf("LOWER(c.name)=LOWER($%d)", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("sv.priority=$%d", len(args)))
	}
	if filter.CategoryTypeID != nil {
		args = append(args, *filter.CategoryTypeID)
		clauses = append(clauses, fmt.Sprintf("sv.category_type_id=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		p := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(sv.name) LIKE %s OR LOWER(COALESCE(sv.description,'')) LIKE %s)", p, p))
	}

	return strings.Join(clauses, " AND "), args
}

func (r *serviceRepository) List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error) {
	where, args := serviceWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY sv.created_at DESC LIMIT %d OFFSET %d`,
		serviceBase, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

func (r *serviceRepository) Count(ctx context.Context, filter ServiceFilter) (int64, error) {
	where, args := serviceWhere(filter)
	query := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM services sv
        LEFT JOIN categories c ON c.id = sv.category_id
        WHERE %s`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *serviceRepository) UpdateStatus(ctx context.Context, id int64, status domain.ServiceStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE services SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanServices(rows pgx.Rows) ([]domain.Service, error) {
	var result []domain.Service
	for rows.Next() {
		var (
			sv domain.Service

			catID, catTypeID, ctCategoryID, userID *int64
			catName, catDesc, ctName, ctDesc       *string
			catCreatedAt, catUpdatedAt             *time.Time
			ctCreatedAt, ctUpdatedAt               *time.Time
			userEmail, userFirstname               *string
		)

		if err := rows.Scan(
			&sv.ID,
			&sv.Name,
			&sv.CategoryID,
			&sv.CategoryTypeID,
			&sv.Description,
			&sv.Price,
			&sv.PriceUnit,
			&sv.ImageURL,
			&sv.Features,
			&sv.Status,
			&sv.Priority,
			&sv.OwnerID,
			&sv.CreatedAt,
			&sv.UpdatedAt,
			&catID,
			&catName,
			&catDesc,
			&catCreatedAt,
			&catUpdatedAt,
			&catTypeID,
			&ctCategoryID,
			&ctName,
			&ctDesc,
			&ctCreatedAt,
			&ctUpdatedAt,
			&userID,
			&userEmail,
			&userFirstname,
		); err != nil {
			return nil, err
		}

		if catID != nil && catName != nil {
			sv.Category = &domain.Category{ID: *catID, Name: *catName, Description: catDesc}
			if catCreatedAt != nil {
				sv.Category.CreatedAt = *catCreatedAt
			}
			if catUpdatedAt != nil {
				sv.Category.UpdatedAt = *catUpdatedAt
			}
		}
		if catTypeID != nil && ctName != nil && ctCategoryID != nil {
			sv.CategoryType = &domain.CategoryType{ID: *catTypeID, CategoryID: *ctCategoryID, Name: *ctName, Description: ctDesc}
			if ctCreatedAt != nil {
				sv.CategoryType.CreatedAt = *ctCreatedAt
			}
			if ctUpdatedAt != nil {
				sv.CategoryType.UpdatedAt = *ctUpdatedAt
			}
		}
		if userID != nil && userEmail != nil {
			sv.Owner = &domain.UserSummary{ID: *userID, Email: *userEmail, Firstname: userFirstname}
		}
		result = append(result, sv)
	}
	return result, rows.Err()
}
