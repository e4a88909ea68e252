package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type TechnicalSpecRepository struct {
	DB *sql.DB
}

func NewTechnicalSpecRepository(db *sql.DB) *TechnicalSpecRepository {
	return &TechnicalSpecRepository{DB: db}
}

const technicalSpecColumns = `id, category, name_en, name_ar, value_en, value_ar, "order", published, created_at, updated_at`

func scanTechnicalSpec(row interface{ Scan(...any) error }) (*entity.TechnicalSpec, error) {
	var t entity.TechnicalSpec
	err := row.Scan(
		&t.ID, &t.Category, &t.NameEn, &t.NameAr, &t.ValueEn, &t.ValueAr,
		&t.Order, &t.Published, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicalSpecRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.TechnicalSpec, int, error) {
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM technical_specs"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting technical specs: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM technical_specs%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		technicalSpecColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing technical specs: %w", err)
	}
	defer rows.Close()

	specs := []*entity.TechnicalSpec{}
	for rows.Next() {
		t, err := scanTechnicalSpec(rows)
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, t)
	}
	return specs, total, rows.Err()
}

func (r *TechnicalSpecRepository) FindByID(ctx context.Context, id string) (*entity.TechnicalSpec, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+technicalSpecColumns+" FROM technical_specs WHERE id = $1", id)
	t, err := scanTechnicalSpec(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}

func (r *TechnicalSpecRepository) Create(ctx context.Context, t *entity.TechnicalSpec) error {
	query := `
		INSERT INTO technical_specs (id, category, name_en, name_ar, value_en, value_ar, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.Category, t.NameEn, t.NameAr, t.ValueEn, t.ValueAr,
		t.Order, t.Published, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting technical spec: %w", err)
	}
	return nil
}

func (r *TechnicalSpecRepository) Update(ctx context.Context, t *entity.TechnicalSpec) error {
	query := `
		UPDATE technical_specs
		SET category = $2, name_en = $3, name_ar = $4, value_en = $5, value_ar = $6,
		    "order" = $7, published = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.ID, t.Category, t.NameEn, t.NameAr, t.ValueEn, t.ValueAr, t.Order, t.Published,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *TechnicalSpecRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM technical_specs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting technical spec: %w", err)
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
