package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service is an offered service line (e.g. structural design, supervision).
type Service struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"titleEn"`
	TitleAr       string    `json:"titleAr"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	DescriptionAr string    `json:"descriptionAr,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	Order         int       `json:"order"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewService(titleEn, titleAr string) *Service {
	now := time.Now()
	return &Service{
		ID:        uuid.New().String(),
		TitleEn:   titleEn,
		TitleAr:   titleAr,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Testimonial carries a client quote in both languages. Rating is 1-5.
type Testimonial struct {
	ID        string    `json:"id"`
	NameEn    string    `json:"nameEn"`
	NameAr    string    `json:"nameAr"`
	RoleEn    string    `json:"roleEn,omitempty"`
	RoleAr    string    `json:"roleAr,omitempty"`
	QuoteEn   string    `json:"quoteEn"`
	QuoteAr   string    `json:"quoteAr"`
	Rating    int       `json:"rating"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTestimonial(nameEn, nameAr, quoteEn, quoteAr string, rating int) *Testimonial {
	now := time.Now()
	return &Testimonial{
		ID:        uuid.New().String(),
		NameEn:    nameEn,
		NameAr:    nameAr,
		QuoteEn:   quoteEn,
		QuoteAr:   quoteAr,
		Rating:    rating,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Gallery categories mirror project categories plus interiors.
const GalleryCategoryInterior = "INTERIOR"

var GalleryCategories = []string{
	ProjectCategoryVilla, ProjectCategoryResidential, ProjectCategoryCommercial,
	ProjectCategoryRenovation, ProjectCategoryLandscape, GalleryCategoryInterior,
}

type GalleryImage struct {
	ID        string    `json:"id"`
	TitleEn   string    `json:"titleEn,omitempty"`
	TitleAr   string    `json:"titleAr,omitempty"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewGalleryImage(imageURL, category string) *GalleryImage {
	now := time.Now()
	return &GalleryImage{
		ID:        uuid.New().String(),
		ImageURL:  imageURL,
		Category:  category,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type ServiceRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*Service, int, error)
	FindByID(ctx context.Context, id string) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}

type TestimonialRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*Testimonial, int, error)
	FindByID(ctx context.Context, id string) (*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
}

type GalleryRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*GalleryImage, int, error)
	FindByID(ctx context.Context, id string) (*GalleryImage, error)
	Create(ctx context.Context, g *GalleryImage) error
	Update(ctx context.Context, g *GalleryImage) error
	Delete(ctx context.Context, id string) error
}
