package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type GalleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

const galleryColumns = `id, title_en, title_ar, image_url, category, "order", published, created_at, updated_at`

func scanGalleryImage(row interface{ Scan(...any) error }) (*entity.GalleryImage, error) {
	var g entity.GalleryImage
	err := row.Scan(
		&g.ID, &g.TitleEn, &g.TitleAr, &g.ImageURL, &g.Category,
		&g.Order, &g.Published, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns gallery images in a fixed order: "order" ascending, then id as
// a stable tiebreak so repeated reads are byte-identical.
func (r *GalleryRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.GalleryImage, int, error) {
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM gallery_images"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting gallery images: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM gallery_images%s ORDER BY "order" ASC, id ASC LIMIT $%d OFFSET $%d`,
		galleryColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing gallery images: %w", err)
	}
	defer rows.Close()

	images := []*entity.GalleryImage{}
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, 0, err
		}
		images = append(images, g)
	}
	return images, total, rows.Err()
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*entity.GalleryImage, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+galleryColumns+" FROM gallery_images WHERE id = $1", id)
	g, err := scanGalleryImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return g, err
}

func (r *GalleryRepository) Create(ctx context.Context, g *entity.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, title_en, title_ar, image_url, category, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		g.ID, g.TitleEn, g.TitleAr, g.ImageURL, g.Category,
		g.Order, g.Published, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Update(ctx context.Context, g *entity.GalleryImage) error {
	query := `
		UPDATE gallery_images
		SET title_en = $2, title_ar = $3, image_url = $4, category = $5,
		    "order" = $6, published = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		g.ID, g.TitleEn, g.TitleAr, g.ImageURL, g.Category, g.Order, g.Published,
	).Scan(&g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM gallery_images WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting gallery image: %w", err)
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
