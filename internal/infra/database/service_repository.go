package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

const serviceColumns = `id, title_en, title_ar, description_en, description_ar, icon, "order", published, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID, &s.TitleEn, &s.TitleAr, &s.DescriptionEn, &s.DescriptionAr,
		&s.Icon, &s.Order, &s.Published, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.Service, int, error) {
	// Services have no category column.
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM services"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting services: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM services%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		serviceColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing services: %w", err)
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}
	return services, total, rows.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = $1", id)
	s, err := scanService(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, title_en, title_ar, description_en, description_ar, icon, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.TitleEn, s.TitleAr, s.DescriptionEn, s.DescriptionAr,
		s.Icon, s.Order, s.Published, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services
		SET title_en = $2, title_ar = $3, description_en = $4, description_ar = $5,
		    icon = $6, "order" = $7, published = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ID, s.TitleEn, s.TitleAr, s.DescriptionEn, s.DescriptionAr,
		s.Icon, s.Order, s.Published,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
