package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepository(db *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

const testimonialColumns = `id, name_en, name_ar, role_en, role_ar, quote_en, quote_ar, rating, "order", published, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*entity.Testimonial, error) {
	var t entity.Testimonial
	err := row.Scan(
		&t.ID, &t.NameEn, &t.NameAr, &t.RoleEn, &t.RoleAr,
		&t.QuoteEn, &t.QuoteAr, &t.Rating, &t.Order, &t.Published,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.Testimonial, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM testimonials"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting testimonials: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM testimonials%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		testimonialColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []*entity.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, 0, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, total, rows.Err()
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+testimonialColumns+" FROM testimonials WHERE id = $1", id)
	t, err := scanTestimonial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}

func (r *TestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials
			(id, name_en, name_ar, role_en, role_ar, quote_en, quote_ar, rating, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.NameEn, t.NameAr, t.RoleEn, t.RoleAr,
		t.QuoteEn, t.QuoteAr, t.Rating, t.Order, t.Published,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET name_en = $2, name_ar = $3, role_en = $4, role_ar = $5,
		    quote_en = $6, quote_ar = $7, rating = $8, "order" = $9, published = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.ID, t.NameEn, t.NameAr, t.RoleEn, t.RoleAr,
		t.QuoteEn, t.QuoteAr, t.Rating, t.Order, t.Published,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting testimonial: %w", err)
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
