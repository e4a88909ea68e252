package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type CredentialRepository struct {
	DB *sql.DB
}

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{DB: db}
}

const credentialColumns = `id, title_en, title_ar, issuer, year, image_url, "order", published, created_at, updated_at`

func scanCredential(row interface{ Scan(...any) error }) (*entity.Credential, error) {
	var c entity.Credential
	err := row.Scan(
		&c.ID, &c.TitleEn, &c.TitleAr, &c.Issuer, &c.Year, &c.ImageURL,
		&c.Order, &c.Published, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CredentialRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.Credential, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM credentials"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting credentials: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM credentials%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		credentialColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing credentials: %w", err)
	}
	defer rows.Close()

	credentials := []*entity.Credential{}
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, 0, err
		}
		credentials = append(credentials, c)
	}
	return credentials, total, rows.Err()
}

func (r *CredentialRepository) FindByID(ctx context.Context, id string) (*entity.Credential, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+credentialColumns+" FROM credentials WHERE id = $1", id)
	c, err := scanCredential(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return c, err
}

func (r *CredentialRepository) Create(ctx context.Context, c *entity.Credential) error {
	query := `
		INSERT INTO credentials (id, title_en, title_ar, issuer, year, image_url, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.TitleEn, c.TitleAr, c.Issuer, c.Year, c.ImageURL,
		c.Order, c.Published, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Update(ctx context.Context, c *entity.Credential) error {
	query := `
		UPDATE credentials
		SET title_en = $2, title_ar = $3, issuer = $4, year = $5, image_url = $6,
		    "order" = $7, published = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.ID, c.TitleEn, c.TitleAr, c.Issuer, c.Year, c.ImageURL, c.Order, c.Published,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM credentials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting credential: %w", err)
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
