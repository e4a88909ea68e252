package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type EngineeringMetricRepository struct {
	DB *sql.DB
}

func NewEngineeringMetricRepository(db *sql.DB) *EngineeringMetricRepository {
	return &EngineeringMetricRepository{DB: db}
}

const engineeringMetricColumns = `id, label_en, label_ar, value, unit, "order", published, created_at, updated_at`

func scanEngineeringMetric(row interface{ Scan(...any) error }) (*entity.EngineeringMetric, error) {
	var m entity.EngineeringMetric
	err := row.Scan(
		&m.ID, &m.LabelEn, &m.LabelAr, &m.Value, &m.Unit,
		&m.Order, &m.Published, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EngineeringMetricRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.EngineeringMetric, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM engineering_metrics"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting engineering metrics: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM engineering_metrics%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		engineeringMetricColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing engineering metrics: %w", err)
	}
	defer rows.Close()

	metrics := []*entity.EngineeringMetric{}
	for rows.Next() {
		m, err := scanEngineeringMetric(rows)
		if err != nil {
			return nil, 0, err
		}
		metrics = append(metrics, m)
	}
	return metrics, total, rows.Err()
}

func (r *EngineeringMetricRepository) FindByID(ctx context.Context, id string) (*entity.EngineeringMetric, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+engineeringMetricColumns+" FROM engineering_metrics WHERE id = $1", id)
	m, err := scanEngineeringMetric(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}

func (r *EngineeringMetricRepository) Create(ctx context.Context, m *entity.EngineeringMetric) error {
	query := `
		INSERT INTO engineering_metrics (id, label_en, label_ar, value, unit, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.LabelEn, m.LabelAr, m.Value, m.Unit,
		m.Order, m.Published, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting engineering metric: %w", err)
	}
	return nil
}

func (r *EngineeringMetricRepository) Update(ctx context.Context, m *entity.EngineeringMetric) error {
	query := `
		UPDATE engineering_metrics
		SET label_en = $2, label_ar = $3, value = $4, unit = $5,
		    "order" = $6, published = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		m.ID, m.LabelEn, m.LabelAr, m.Value, m.Unit, m.Order, m.Published,
	).Scan(&m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *EngineeringMetricRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM engineering_metrics WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting engineering metric: %w", err)
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
