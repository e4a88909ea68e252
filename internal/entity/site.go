package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The entities below are the small "site blocks" edited from the admin area
// and rendered on the public pages. They all share the order/published pair.

type Partnership struct {
	ID         string    `json:"id"`
	NameEn     string    `json:"nameEn"`
	NameAr     string    `json:"nameAr"`
	LogoURL    string    `json:"logoUrl,omitempty"`
	WebsiteURL string    `json:"websiteUrl,omitempty"`
	Order      int       `json:"order"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewPartnership(nameEn, nameAr string) *Partnership {
	now := time.Now()
	return &Partnership{
		ID:        uuid.New().String(),
		NameEn:    nameEn,
		NameAr:    nameAr,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Credential is a certification or award (ISO, municipality approvals).
type Credential struct {
	ID        string    `json:"id"`
	TitleEn   string    `json:"titleEn"`
	TitleAr   string    `json:"titleAr"`
	Issuer    string    `json:"issuer,omitempty"`
	Year      int       `json:"year,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCredential(titleEn, titleAr string) *Credential {
	now := time.Now()
	return &Credential{
		ID:        uuid.New().String(),
		TitleEn:   titleEn,
		TitleAr:   titleAr,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProcessStep is one step of the "how we work" timeline.
type ProcessStep struct {
	ID            string    `json:"id"`
	StepNumber    int       `json:"stepNumber"`
	TitleEn       string    `json:"titleEn"`
	TitleAr       string    `json:"titleAr"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	DescriptionAr string    `json:"descriptionAr,omitempty"`
	Order         int       `json:"order"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewProcessStep(stepNumber int, titleEn, titleAr string) *ProcessStep {
	now := time.Now()
	return &ProcessStep{
		ID:         uuid.New().String(),
		StepNumber: stepNumber,
		TitleEn:    titleEn,
		TitleAr:    titleAr,
		Published:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type TechnicalSpec struct {
	ID        string    `json:"id"`
	Category  string    `json:"category,omitempty"`
	NameEn    string    `json:"nameEn"`
	NameAr    string    `json:"nameAr"`
	ValueEn   string    `json:"valueEn"`
	ValueAr   string    `json:"valueAr"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewTechnicalSpec(nameEn, nameAr, valueEn, valueAr string) *TechnicalSpec {
	now := time.Now()
	return &TechnicalSpec{
		ID:        uuid.New().String(),
		NameEn:    nameEn,
		NameAr:    nameAr,
		ValueEn:   valueEn,
		ValueAr:   valueAr,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SiteTranslation is a UI copy string keyed for the frontend i18n layer.
type SiteTranslation struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	En        string    `json:"en"`
	Ar        string    `json:"ar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSiteTranslation(key, en, ar string) *SiteTranslation {
	now := time.Now()
	return &SiteTranslation{
		ID:        uuid.New().String(),
		Key:       key,
		En:        en,
		Ar:        ar,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EngineeringMetric is a headline number ("250+ projects delivered").
type EngineeringMetric struct {
	ID        string    `json:"id"`
	LabelEn   string    `json:"labelEn"`
	LabelAr   string    `json:"labelAr"`
	Value     string    `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewEngineeringMetric(labelEn, labelAr, value string) *EngineeringMetric {
	now := time.Now()
	return &EngineeringMetric{
		ID:        uuid.New().String(),
		LabelEn:   labelEn,
		LabelAr:   labelAr,
		Value:     value,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type BeforeAfterItem struct {
	ID             string    `json:"id"`
	TitleEn        string    `json:"titleEn"`
	TitleAr        string    `json:"titleAr"`
	BeforeImageURL string    `json:"beforeImageUrl"`
	AfterImageURL  string    `json:"afterImageUrl"`
	Order          int       `json:"order"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewBeforeAfterItem(titleEn, titleAr, beforeURL, afterURL string) *BeforeAfterItem {
	now := time.Now()
	return &BeforeAfterItem{
		ID:             uuid.New().String(),
		TitleEn:        titleEn,
		TitleAr:        titleAr,
		BeforeImageURL: beforeURL,
		AfterImageURL:  afterURL,
		Published:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type PartnershipRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*Partnership, int, error)
	FindByID(ctx context.Context, id string) (*Partnership, error)
	Create(ctx context.Context, p *Partnership) error
	Update(ctx context.Context, p *Partnership) error
	Delete(ctx context.Context, id string) error
}

type CredentialRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*Credential, int, error)
	FindByID(ctx context.Context, id string) (*Credential, error)
	Create(ctx context.Context, c *Credential) error
	Update(ctx context.Context, c *Credential) error
	Delete(ctx context.Context, id string) error
}

type ProcessStepRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*ProcessStep, int, error)
	FindByID(ctx context.Context, id string) (*ProcessStep, error)
	Create(ctx context.Context, p *ProcessStep) error
	Update(ctx context.Context, p *ProcessStep) error
	Delete(ctx context.Context, id string) error
}

type TechnicalSpecRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*TechnicalSpec, int, error)
	FindByID(ctx context.Context, id string) (*TechnicalSpec, error)
	Create(ctx context.Context, t *TechnicalSpec) error
	Update(ctx context.Context, t *TechnicalSpec) error
	Delete(ctx context.Context, id string) error
}

type SiteTranslationRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*SiteTranslation, int, error)
	FindByID(ctx context.Context, id string) (*SiteTranslation, error)
	Create(ctx context.Context, t *SiteTranslation) error
	Update(ctx context.Context, t *SiteTranslation) error
	Delete(ctx context.Context, id string) error
}

type EngineeringMetricRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*EngineeringMetric, int, error)
	FindByID(ctx context.Context, id string) (*EngineeringMetric, error)
	Create(ctx context.Context, m *EngineeringMetric) error
	Update(ctx context.Context, m *EngineeringMetric) error
	Delete(ctx context.Context, id string) error
}

type BeforeAfterRepositoryInterface interface {
	List(ctx context.Context, filter ContentFilter) ([]*BeforeAfterItem, int, error)
	FindByID(ctx context.Context, id string) (*BeforeAfterItem, error)
	Create(ctx context.Context, b *BeforeAfterItem) error
	Update(ctx context.Context, b *BeforeAfterItem) error
	Delete(ctx context.Context, id string) error
}
