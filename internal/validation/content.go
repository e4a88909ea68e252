package validation

import "github.com/albenaa/albenaa-api/internal/entity"

type CreateProjectInput struct {
	Slug          string `json:"slug"`
	TitleEn       string `json:"titleEn"`
	TitleAr       string `json:"titleAr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionAr string `json:"descriptionAr"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	CoverImageURL string `json:"coverImageUrl"`
	Featured      bool   `json:"featured"`
	Order         int    `json:"order"`
	Published     *bool  `json:"published"`
}

func ValidateCreateProjectInput(input CreateProjectInput) []ValidationError {
	var errs []ValidationError

	if input.Slug == "" {
		errs = append(errs, ValidationError{"slug", "is required"})
	} else if !isValidSlug(input.Slug) {
		errs = append(errs, ValidationError{"slug", "must be lowercase letters, digits and hyphens"})
	}
	errs = required(errs, "titleEn", input.TitleEn)
	errs = required(errs, "titleAr", input.TitleAr)
	if input.Category == "" {
		errs = append(errs, ValidationError{"category", "is required"})
	} else if !inSet(input.Category, entity.ProjectCategories) {
		errs = append(errs, ValidationError{"category", "is not a valid category"})
	}
	if input.CoverImageURL != "" && !isValidURL(input.CoverImageURL) {
		errs = append(errs, ValidationError{"coverImageUrl", "must be a valid URL"})
	}

	return errs
}

type UpdateProjectInput struct {
	Slug          *string `json:"slug"`
	TitleEn       *string `json:"titleEn"`
	TitleAr       *string `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	Category      *string `json:"category"`
	Location      *string `json:"location"`
	CoverImageURL *string `json:"coverImageUrl"`
	Featured      *bool   `json:"featured"`
	Order         *int    `json:"order"`
	Published     *bool   `json:"published"`
}

func ValidateUpdateProjectInput(input UpdateProjectInput) []ValidationError {
	var errs []ValidationError

	if input.Slug != nil && !isValidSlug(*input.Slug) {
		errs = append(errs, ValidationError{"slug", "must be lowercase letters, digits and hyphens"})
	}
	if input.TitleEn != nil {
		errs = required(errs, "titleEn", *input.TitleEn)
	}
	if input.TitleAr != nil {
		errs = required(errs, "titleAr", *input.TitleAr)
	}
	if input.Category != nil && !inSet(*input.Category, entity.ProjectCategories) {
		errs = append(errs, ValidationError{"category", "is not a valid category"})
	}
	if input.CoverImageURL != nil && *input.CoverImageURL != "" && !isValidURL(*input.CoverImageURL) {
		errs = append(errs, ValidationError{"coverImageUrl", "must be a valid URL"})
	}

	return errs
}

func (input UpdateProjectInput) Apply(p *entity.Project) {
	if input.Slug != nil {
		p.Slug = *input.Slug
	}
	if input.TitleEn != nil {
		p.TitleEn = *input.TitleEn
	}
	if input.TitleAr != nil {
		p.TitleAr = *input.TitleAr
	}
	if input.DescriptionEn != nil {
		p.DescriptionEn = *input.DescriptionEn
	}
	if input.DescriptionAr != nil {
		p.DescriptionAr = *input.DescriptionAr
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.CoverImageURL != nil {
		p.CoverImageURL = *input.CoverImageURL
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Order != nil {
		p.Order = *input.Order
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
}

type CreateServiceInput struct {
	TitleEn       string `json:"titleEn"`
	TitleAr       string `json:"titleAr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionAr string `json:"descriptionAr"`
	Icon          string `json:"icon"`
	Order         int    `json:"order"`
	Published     *bool  `json:"published"`
}

func ValidateCreateServiceInput(input CreateServiceInput) []ValidationError {
	var errs []ValidationError
	errs = required(errs, "titleEn", input.TitleEn)
	errs = required(errs, "titleAr", input.TitleAr)
	return errs
}

type UpdateServiceInput struct {
	TitleEn       *string `json:"titleEn"`
	TitleAr       *string `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	Icon          *string `json:"icon"`
	Order         *int    `json:"order"`
	Published     *bool   `json:"published"`
}

func ValidateUpdateServiceInput(input UpdateServiceInput) []ValidationError {
	var errs []ValidationError
	if input.TitleEn != nil {
		errs = required(errs, "titleEn", *input.TitleEn)
	}
	if input.TitleAr != nil {
		errs = required(errs, "titleAr", *input.TitleAr)
	}
	return errs
}

func (input UpdateServiceInput) Apply(s *entity.Service) {
	if input.TitleEn != nil {
		s.TitleEn = *input.TitleEn
	}
	if input.TitleAr != nil {
		s.TitleAr = *input.TitleAr
	}
	if input.DescriptionEn != nil {
		s.DescriptionEn = *input.DescriptionEn
	}
	if input.DescriptionAr != nil {
		s.DescriptionAr = *input.DescriptionAr
	}
	if input.Icon != nil {
		s.Icon = *input.Icon
	}
	if input.Order != nil {
		s.Order = *input.Order
	}
	if input.Published != nil {
		s.Published = *input.Published
	}
}

type CreateTestimonialInput struct {
	NameEn    string `json:"nameEn"`
	NameAr    string `json:"nameAr"`
	RoleEn    string `json:"roleEn"`
	RoleAr    string `json:"roleAr"`
	QuoteEn   string `json:"quoteEn"`
	QuoteAr   string `json:"quoteAr"`
	Rating    int    `json:"rating"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateTestimonialInput(input CreateTestimonialInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "nameEn", input.NameEn)
	errs = required(errs, "nameAr", input.NameAr)
	errs = required(errs, "quoteEn", input.QuoteEn)
	errs = required(errs, "quoteAr", input.QuoteAr)
	if input.Rating < 1 || input.Rating > 5 {
		errs = append(errs, ValidationError{"rating", "must be between 1 and 5"})
	}

	return errs
}

type UpdateTestimonialInput struct {
	NameEn    *string `json:"nameEn"`
	NameAr    *string `json:"nameAr"`
	RoleEn    *string `json:"roleEn"`
	RoleAr    *string `json:"roleAr"`
	QuoteEn   *string `json:"quoteEn"`
	QuoteAr   *string `json:"quoteAr"`
	Rating    *int    `json:"rating"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateTestimonialInput(input UpdateTestimonialInput) []ValidationError {
	var errs []ValidationError

	if input.NameEn != nil {
		errs = required(errs, "nameEn", *input.NameEn)
	}
	if input.NameAr != nil {
		errs = required(errs, "nameAr", *input.NameAr)
	}
	if input.QuoteEn != nil {
		errs = required(errs, "quoteEn", *input.QuoteEn)
	}
	if input.QuoteAr != nil {
		errs = required(errs, "quoteAr", *input.QuoteAr)
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		errs = append(errs, ValidationError{"rating", "must be between 1 and 5"})
	}

	return errs
}

func (input UpdateTestimonialInput) Apply(t *entity.Testimonial) {
	if input.NameEn != nil {
		t.NameEn = *input.NameEn
	}
	if input.NameAr != nil {
		t.NameAr = *input.NameAr
	}
	if input.RoleEn != nil {
		t.RoleEn = *input.RoleEn
	}
	if input.RoleAr != nil {
		t.RoleAr = *input.RoleAr
	}
	if input.QuoteEn != nil {
		t.QuoteEn = *input.QuoteEn
	}
	if input.QuoteAr != nil {
		t.QuoteAr = *input.QuoteAr
	}
	if input.Rating != nil {
		t.Rating = *input.Rating
	}
	if input.Order != nil {
		t.Order = *input.Order
	}
	if input.Published != nil {
		t.Published = *input.Published
	}
}

type CreateGalleryImageInput struct {
	TitleEn   string `json:"titleEn"`
	TitleAr   string `json:"titleAr"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateGalleryImageInput(input CreateGalleryImageInput) []ValidationError {
	var errs []ValidationError

	if input.ImageURL == "" {
		errs = append(errs, ValidationError{"imageUrl", "is required"})
	} else if !isValidURL(input.ImageURL) {
		errs = append(errs, ValidationError{"imageUrl", "must be a valid URL"})
	}
	if input.Category == "" {
		errs = append(errs, ValidationError{"category", "is required"})
	} else if !inSet(input.Category, entity.GalleryCategories) {
		errs = append(errs, ValidationError{"category", "is not a valid category"})
	}

	return errs
}

type UpdateGalleryImageInput struct {
	TitleEn   *string `json:"titleEn"`
	TitleAr   *string `json:"titleAr"`
	ImageURL  *string `json:"imageUrl"`
	Category  *string `json:"category"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateGalleryImageInput(input UpdateGalleryImageInput) []ValidationError {
	var errs []ValidationError

	if input.ImageURL != nil && !isValidURL(*input.ImageURL) {
		errs = append(errs, ValidationError{"imageUrl", "must be a valid URL"})
	}
	if input.Category != nil && !inSet(*input.Category, entity.GalleryCategories) {
		errs = append(errs, ValidationError{"category", "is not a valid category"})
	}

	return errs
}

func (input UpdateGalleryImageInput) Apply(g *entity.GalleryImage) {
	if input.TitleEn != nil {
		g.TitleEn = *input.TitleEn
	}
	if input.TitleAr != nil {
		g.TitleAr = *input.TitleAr
	}
	if input.ImageURL != nil {
		g.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		g.Category = *input.Category
	}
	if input.Order != nil {
		g.Order = *input.Order
	}
	if input.Published != nil {
		g.Published = *input.Published
	}
}
