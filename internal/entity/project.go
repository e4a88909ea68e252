package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Project categories shown on the public site.
const (
	ProjectCategoryVilla       = "VILLA"
	ProjectCategoryResidential = "RESIDENTIAL"
	ProjectCategoryCommercial  = "COMMERCIAL"
	ProjectCategoryRenovation  = "RENOVATION"
	ProjectCategoryLandscape   = "LANDSCAPE"
)

var ProjectCategories = []string{
	ProjectCategoryVilla, ProjectCategoryResidential, ProjectCategoryCommercial,
	ProjectCategoryRenovation, ProjectCategoryLandscape,
}

// Project is a published portfolio entry with bilingual copy.
type Project struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	TitleEn       string    `json:"titleEn"`
	TitleAr       string    `json:"titleAr"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	DescriptionAr string    `json:"descriptionAr,omitempty"`
	Category      string    `json:"category"`
	Location      string    `json:"location,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Featured      bool      `json:"featured"`
	Order         int       `json:"order"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewProject(slug, titleEn, titleAr, category string) *Project {
	now := time.Now()
	return &Project{
		ID:        uuid.New().String(),
		Slug:      slug,
		TitleEn:   titleEn,
		TitleAr:   titleAr,
		Category:  category,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ContentFilter is shared by the published-content listings. PublishedOnly is
// forced true on public routes and left false for the admin area.
type ContentFilter struct {
	Category      string
	PublishedOnly bool
	Page          int
	PageSize      int
}

type ProjectRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*Project, int, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
}
