package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type PartnershipRepository struct {
	DB *sql.DB
}

func NewPartnershipRepository(db *sql.DB) *PartnershipRepository {
	return &PartnershipRepository{DB: db}
}

const partnershipColumns = `id, name_en, name_ar, logo_url, website_url, "order", published, created_at, updated_at`

func scanPartnership(row interface{ Scan(...any) error }) (*entity.Partnership, error) {
	var p entity.Partnership
	err := row.Scan(
		&p.ID, &p.NameEn, &p.NameAr, &p.LogoURL, &p.WebsiteURL,
		&p.Order, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnershipRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.Partnership, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM partnerships"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting partnerships: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM partnerships%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		partnershipColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing partnerships: %w", err)
	}
	defer rows.Close()

	partnerships := []*entity.Partnership{}
	for rows.Next() {
		p, err := scanPartnership(rows)
		if err != nil {
			return nil, 0, err
		}
		partnerships = append(partnerships, p)
	}
	return partnerships, total, rows.Err()
}

func (r *PartnershipRepository) FindByID(ctx context.Context, id string) (*entity.Partnership, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+partnershipColumns+" FROM partnerships WHERE id = $1", id)
	p, err := scanPartnership(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *PartnershipRepository) Create(ctx context.Context, p *entity.Partnership) error {
	query := `
		INSERT INTO partnerships (id, name_en, name_ar, logo_url, website_url, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.NameEn, p.NameAr, p.LogoURL, p.WebsiteURL,
		p.Order, p.Published, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting partnership: %w", err)
	}
	return nil
}

func (r *PartnershipRepository) Update(ctx context.Context, p *entity.Partnership) error {
	query := `
		UPDATE partnerships
		SET name_en = $2, name_ar = $3, logo_url = $4, website_url = $5,
		    "order" = $6, published = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.ID, p.NameEn, p.NameAr, p.LogoURL, p.WebsiteURL, p.Order, p.Published,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *PartnershipRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM partnerships WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting partnership: %w", err)
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
