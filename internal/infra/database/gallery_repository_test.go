package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func TestGalleryListPublishedOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM gallery_images WHERE category = \\$1 AND published = TRUE").
		WithArgs("INTERIOR").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	image := entity.NewGalleryImage("https://cdn.albenaa.com/interior-1.jpg", "INTERIOR")
	mock.ExpectQuery(`SELECT .* FROM gallery_images WHERE category = \$1 AND published = TRUE ORDER BY "order" ASC, id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs("INTERIOR", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title_en", "title_ar", "image_url", "category", "order", "published", "created_at", "updated_at",
		}).AddRow(image.ID, image.TitleEn, image.TitleAr, image.ImageURL, image.Category, image.Order, image.Published, image.CreatedAt, image.UpdatedAt))

	repo := NewGalleryRepository(db)
	images, total, err := repo.List(context.Background(), entity.ContentFilter{
		Category:      "INTERIOR",
		PublishedOnly: true,
		Page:          1,
		PageSize:      50,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, images, 1)
	assert.Equal(t, image.ImageURL, images[0].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM gallery_images WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewGalleryRepository(db)
	err = repo.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}
