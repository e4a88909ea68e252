package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type ProjectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

const projectColumns = `id, slug, title_en, title_ar, description_en, description_ar,
	category, location, cover_image_url, featured, "order", published, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.Slug, &p.TitleEn, &p.TitleAr, &p.DescriptionEn, &p.DescriptionAr,
		&p.Category, &p.Location, &p.CoverImageURL, &p.Featured, &p.Order, &p.Published,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.Project, int, error) {
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting projects: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM projects%s ORDER BY "order" ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		projectColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []*entity.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE slug = $1", slug)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects
			(id, slug, title_en, title_ar, description_en, description_ar,
			 category, location, cover_image_url, featured, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Slug, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr,
		p.Category, p.Location, p.CoverImageURL, p.Featured, p.Order, p.Published,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugAlreadyExists
		}
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects
		SET slug = $2, title_en = $3, title_ar = $4, description_en = $5, description_ar = $6,
		    category = $7, location = $8, cover_image_url = $9, featured = $10,
		    "order" = $11, published = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.ID, p.Slug, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr,
		p.Category, p.Location, p.CoverImageURL, p.Featured, p.Order, p.Published,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if isUniqueViolation(err) {
		return entity.ErrSlugAlreadyExists
	}
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
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
