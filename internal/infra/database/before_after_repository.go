package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type BeforeAfterRepository struct {
	DB *sql.DB
}

func NewBeforeAfterRepository(db *sql.DB) *BeforeAfterRepository {
	return &BeforeAfterRepository{DB: db}
}

const beforeAfterColumns = `id, title_en, title_ar, before_image_url, after_image_url, "order", published, created_at, updated_at`

func scanBeforeAfter(row interface{ Scan(...any) error }) (*entity.BeforeAfterItem, error) {
	var b entity.BeforeAfterItem
	err := row.Scan(
		&b.ID, &b.TitleEn, &b.TitleAr, &b.BeforeImageURL, &b.AfterImageURL,
		&b.Order, &b.Published, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BeforeAfterRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.BeforeAfterItem, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM before_after_items"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting before/after items: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM before_after_items%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		beforeAfterColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing before/after items: %w", err)
	}
	defer rows.Close()

	items := []*entity.BeforeAfterItem{}
	for rows.Next() {
		b, err := scanBeforeAfter(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *BeforeAfterRepository) FindByID(ctx context.Context, id string) (*entity.BeforeAfterItem, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+beforeAfterColumns+" FROM before_after_items WHERE id = $1", id)
	b, err := scanBeforeAfter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return b, err
}

func (r *BeforeAfterRepository) Create(ctx context.Context, b *entity.BeforeAfterItem) error {
	query := `
		INSERT INTO before_after_items
			(id, title_en, title_ar, before_image_url, after_image_url, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		b.ID, b.TitleEn, b.TitleAr, b.BeforeImageURL, b.AfterImageURL,
		b.Order, b.Published, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting before/after item: %w", err)
	}
	return nil
}

func (r *BeforeAfterRepository) Update(ctx context.Context, b *entity.BeforeAfterItem) error {
	query := `
		UPDATE before_after_items
		SET title_en = $2, title_ar = $3, before_image_url = $4, after_image_url = $5,
		    "order" = $6, published = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		b.ID, b.TitleEn, b.TitleAr, b.BeforeImageURL, b.AfterImageURL, b.Order, b.Published,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *BeforeAfterRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM before_after_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting before/after item: %w", err)
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
