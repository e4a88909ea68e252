package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type TranslationRepository struct {
	DB *sql.DB
}

func NewTranslationRepository(db *sql.DB) *TranslationRepository {
	return &TranslationRepository{DB: db}
}

const translationColumns = `id, key, en, ar, created_at, updated_at`

func scanTranslation(row interface{ Scan(...any) error }) (*entity.SiteTranslation, error) {
	var t entity.SiteTranslation
	err := row.Scan(&t.ID, &t.Key, &t.En, &t.Ar, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List orders by key so the frontend i18n dump is stable. Translations carry
// no category or published column; those filter fields are ignored.
func (r *TranslationRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.SiteTranslation, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM site_translations").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting translations: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := fmt.Sprintf("SELECT %s FROM site_translations ORDER BY key ASC LIMIT $1 OFFSET $2", translationColumns)

	rows, err := r.DB.QueryContext(ctx, query, filter.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing translations: %w", err)
	}
	defer rows.Close()

	translations := []*entity.SiteTranslation{}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, 0, err
		}
		translations = append(translations, t)
	}
	return translations, total, rows.Err()
}

func (r *TranslationRepository) FindByID(ctx context.Context, id string) (*entity.SiteTranslation, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+translationColumns+" FROM site_translations WHERE id = $1", id)
	t, err := scanTranslation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}

func (r *TranslationRepository) Create(ctx context.Context, t *entity.SiteTranslation) error {
	query := `INSERT INTO site_translations (id, key, en, ar, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, t.ID, t.Key, t.En, t.Ar, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrKeyAlreadyExists
		}
		return fmt.Errorf("inserting translation: %w", err)
	}
	return nil
}

func (r *TranslationRepository) Update(ctx context.Context, t *entity.SiteTranslation) error {
	query := `
		UPDATE site_translations
		SET key = $2, en = $3, ar = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query, t.ID, t.Key, t.En, t.Ar).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if isUniqueViolation(err) {
		return entity.ErrKeyAlreadyExists
	}
	return err
}

func (r *TranslationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM site_translations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting translation: %w", err)
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
