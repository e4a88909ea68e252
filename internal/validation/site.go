package validation

import (
	"time"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type CreatePartnershipInput struct {
	NameEn     string `json:"nameEn"`
	NameAr     string `json:"nameAr"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
	Order      int    `json:"order"`
	Published  *bool  `json:"published"`
}

func ValidateCreatePartnershipInput(input CreatePartnershipInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "nameEn", input.NameEn)
	errs = required(errs, "nameAr", input.NameAr)
	if input.LogoURL != "" && !isValidURL(input.LogoURL) {
		errs = append(errs, ValidationError{"logoUrl", "must be a valid URL"})
	}
	if input.WebsiteURL != "" && !isValidURL(input.WebsiteURL) {
		errs = append(errs, ValidationError{"websiteUrl", "must be a valid URL"})
	}

	return errs
}

type UpdatePartnershipInput struct {
	NameEn     *string `json:"nameEn"`
	NameAr     *string `json:"nameAr"`
	LogoURL    *string `json:"logoUrl"`
	WebsiteURL *string `json:"websiteUrl"`
	Order      *int    `json:"order"`
	Published  *bool   `json:"published"`
}

func ValidateUpdatePartnershipInput(input UpdatePartnershipInput) []ValidationError {
	var errs []ValidationError

	if input.NameEn != nil {
		errs = required(errs, "nameEn", *input.NameEn)
	}
	if input.NameAr != nil {
		errs = required(errs, "nameAr", *input.NameAr)
	}
	if input.LogoURL != nil && *input.LogoURL != "" && !isValidURL(*input.LogoURL) {
		errs = append(errs, ValidationError{"logoUrl", "must be a valid URL"})
	}
	if input.WebsiteURL != nil && *input.WebsiteURL != "" && !isValidURL(*input.WebsiteURL) {
		errs = append(errs, ValidationError{"websiteUrl", "must be a valid URL"})
	}

	return errs
}

func (input UpdatePartnershipInput) Apply(p *entity.Partnership) {
	if input.NameEn != nil {
		p.NameEn = *input.NameEn
	}
	if input.NameAr != nil {
		p.NameAr = *input.NameAr
	}
	if input.LogoURL != nil {
		p.LogoURL = *input.LogoURL
	}
	if input.WebsiteURL != nil {
		p.WebsiteURL = *input.WebsiteURL
	}
	if input.Order != nil {
		p.Order = *input.Order
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
}

type CreateCredentialInput struct {
	TitleEn   string `json:"titleEn"`
	TitleAr   string `json:"titleAr"`
	Issuer    string `json:"issuer"`
	Year      int    `json:"year"`
	ImageURL  string `json:"imageUrl"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateCredentialInput(input CreateCredentialInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "titleEn", input.TitleEn)
	errs = required(errs, "titleAr", input.TitleAr)
	if input.Year != 0 && (input.Year < 1950 || input.Year > time.Now().Year()) {
		errs = append(errs, ValidationError{"year", "is out of range"})
	}
	if input.ImageURL != "" && !isValidURL(input.ImageURL) {
		errs = append(errs, ValidationError{"imageUrl", "must be a valid URL"})
	}

	return errs
}

type UpdateCredentialInput struct {
	TitleEn   *string `json:"titleEn"`
	TitleAr   *string `json:"titleAr"`
	Issuer    *string `json:"issuer"`
	Year      *int    `json:"year"`
	ImageURL  *string `json:"imageUrl"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateCredentialInput(input UpdateCredentialInput) []ValidationError {
	var errs []ValidationError

	if input.TitleEn != nil {
		errs = required(errs, "titleEn", *input.TitleEn)
	}
	if input.TitleAr != nil {
		errs = required(errs, "titleAr", *input.TitleAr)
	}
	if input.Year != nil && *input.Year != 0 && (*input.Year < 1950 || *input.Year > time.Now().Year()) {
		errs = append(errs, ValidationError{"year", "is out of range"})
	}
	if input.ImageURL != nil && *input.ImageURL != "" && !isValidURL(*input.ImageURL) {
		errs = append(errs, ValidationError{"imageUrl", "must be a valid URL"})
	}

	return errs
}

func (input UpdateCredentialInput) Apply(c *entity.Credential) {
	if input.TitleEn != nil {
		c.TitleEn = *input.TitleEn
	}
	if input.TitleAr != nil {
		c.TitleAr = *input.TitleAr
	}
	if input.Issuer != nil {
		c.Issuer = *input.Issuer
	}
	if input.Year != nil {
		c.Year = *input.Year
	}
	if input.ImageURL != nil {
		c.ImageURL = *input.ImageURL
	}
	if input.Order != nil {
		c.Order = *input.Order
	}
	if input.Published != nil {
		c.Published = *input.Published
	}
}

type CreateProcessStepInput struct {
	StepNumber    int    `json:"stepNumber"`
	TitleEn       string `json:"titleEn"`
	TitleAr       string `json:"titleAr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionAr string `json:"descriptionAr"`
	Order         int    `json:"order"`
	Published     *bool  `json:"published"`
}

func ValidateCreateProcessStepInput(input CreateProcessStepInput) []ValidationError {
	var errs []ValidationError

	if input.StepNumber < 1 {
		errs = append(errs, ValidationError{"stepNumber", "must be >= 1"})
	}
	errs = required(errs, "titleEn", input.TitleEn)
	errs = required(errs, "titleAr", input.TitleAr)

	return errs
}

type UpdateProcessStepInput struct {
	StepNumber    *int    `json:"stepNumber"`
	TitleEn       *string `json:"titleEn"`
	TitleAr       *string `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	Order         *int    `json:"order"`
	Published     *bool   `json:"published"`
}

func ValidateUpdateProcessStepInput(input UpdateProcessStepInput) []ValidationError {
	var errs []ValidationError

	if input.StepNumber != nil && *input.StepNumber < 1 {
		errs = append(errs, ValidationError{"stepNumber", "must be >= 1"})
	}
	if input.TitleEn != nil {
		errs = required(errs, "titleEn", *input.TitleEn)
	}
	if input.TitleAr != nil {
		errs = required(errs, "titleAr", *input.TitleAr)
	}

	return errs
}

func (input UpdateProcessStepInput) Apply(p *entity.ProcessStep) {
	if input.StepNumber != nil {
		p.StepNumber = *input.StepNumber
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
	if input.Order != nil {
		p.Order = *input.Order
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
}

type CreateTechnicalSpecInput struct {
	Category  string `json:"category"`
	NameEn    string `json:"nameEn"`
	NameAr    string `json:"nameAr"`
	ValueEn   string `json:"valueEn"`
	ValueAr   string `json:"valueAr"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateTechnicalSpecInput(input CreateTechnicalSpecInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "nameEn", input.NameEn)
	errs = required(errs, "nameAr", input.NameAr)
	errs = required(errs, "valueEn", input.ValueEn)
	errs = required(errs, "valueAr", input.ValueAr)

	return errs
}

type UpdateTechnicalSpecInput struct {
	Category  *string `json:"category"`
	NameEn    *string `json:"nameEn"`
	NameAr    *string `json:"nameAr"`
	ValueEn   *string `json:"valueEn"`
	ValueAr   *string `json:"valueAr"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateTechnicalSpecInput(input UpdateTechnicalSpecInput) []ValidationError {
	var errs []ValidationError

	if input.NameEn != nil {
		errs = required(errs, "nameEn", *input.NameEn)
	}
	if input.NameAr != nil {
		errs = required(errs, "nameAr", *input.NameAr)
	}
	if input.ValueEn != nil {
		errs = required(errs, "valueEn", *input.ValueEn)
	}
	if input.ValueAr != nil {
		errs = required(errs, "valueAr", *input.ValueAr)
	}

	return errs
}

func (input UpdateTechnicalSpecInput) Apply(t *entity.TechnicalSpec) {
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.NameEn != nil {
		t.NameEn = *input.NameEn
	}
	if input.NameAr != nil {
		t.NameAr = *input.NameAr
	}
	if input.ValueEn != nil {
		t.ValueEn = *input.ValueEn
	}
	if input.ValueAr != nil {
		t.ValueAr = *input.ValueAr
	}
	if input.Order != nil {
		t.Order = *input.Order
	}
	if input.Published != nil {
		t.Published = *input.Published
	}
}

type CreateTranslationInput struct {
	Key string `json:"key"`
	En  string `json:"en"`
	Ar  string `json:"ar"`
}

func ValidateCreateTranslationInput(input CreateTranslationInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "key", input.Key)
	errs = required(errs, "en", input.En)
	errs = required(errs, "ar", input.Ar)

	return errs
}

type UpdateTranslationInput struct {
	Key *string `json:"key"`
	En  *string `json:"en"`
	Ar  *string `json:"ar"`
}

func ValidateUpdateTranslationInput(input UpdateTranslationInput) []ValidationError {
	var errs []ValidationError

	if input.Key != nil {
		errs = required(errs, "key", *input.Key)
	}
	if input.En != nil {
		errs = required(errs, "en", *input.En)
	}
	if input.Ar != nil {
		errs = required(errs, "ar", *input.Ar)
	}

	return errs
}

func (input UpdateTranslationInput) Apply(t *entity.SiteTranslation) {
	if input.Key != nil {
		t.Key = *input.Key
	}
	if input.En != nil {
		t.En = *input.En
	}
	if input.Ar != nil {
		t.Ar = *input.Ar
	}
}

type CreateEngineeringMetricInput struct {
	LabelEn   string `json:"labelEn"`
	LabelAr   string `json:"labelAr"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateEngineeringMetricInput(input CreateEngineeringMetricInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "labelEn", input.LabelEn)
	errs = required(errs, "labelAr", input.LabelAr)
	errs = required(errs, "value", input.Value)

	return errs
}

type UpdateEngineeringMetricInput struct {
	LabelEn   *string `json:"labelEn"`
	LabelAr   *string `json:"labelAr"`
	Value     *string `json:"value"`
	Unit      *string `json:"unit"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateEngineeringMetricInput(input UpdateEngineeringMetricInput) []ValidationError {
	var errs []ValidationError

	if input.LabelEn != nil {
		errs = required(errs, "labelEn", *input.LabelEn)
	}
	if input.LabelAr != nil {
		errs = required(errs, "labelAr", *input.LabelAr)
	}
	if input.Value != nil {
		errs = required(errs, "value", *input.Value)
	}

	return errs
}

func (input UpdateEngineeringMetricInput) Apply(m *entity.EngineeringMetric) {
	if input.LabelEn != nil {
		m.LabelEn = *input.LabelEn
	}
	if input.LabelAr != nil {
		m.LabelAr = *input.LabelAr
	}
	if input.Value != nil {
		m.Value = *input.Value
	}
	if input.Unit != nil {
		m.Unit = *input.Unit
	}
	if input.Order != nil {
		m.Order = *input.Order
	}
	if input.Published != nil {
		m.Published = *input.Published
	}
}

type CreateBeforeAfterInput struct {
	TitleEn        string `json:"titleEn"`
	TitleAr        string `json:"titleAr"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	Order          int    `json:"order"`
	Published      *bool  `json:"published"`
}

func ValidateCreateBeforeAfterInput(input CreateBeforeAfterInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "titleEn", input.TitleEn)
	errs = required(errs, "titleAr", input.TitleAr)
	if input.BeforeImageURL == "" {
		errs = append(errs, ValidationError{"beforeImageUrl", "is required"})
	} else if !isValidURL(input.BeforeImageURL) {
		errs = append(errs, ValidationError{"beforeImageUrl", "must be a valid URL"})
	}
	if input.AfterImageURL == "" {
		errs = append(errs, ValidationError{"afterImageUrl", "is required"})
	} else if !isValidURL(input.AfterImageURL) {
		errs = append(errs, ValidationError{"afterImageUrl", "must be a valid URL"})
	}

	return errs
}

type UpdateBeforeAfterInput struct {
	TitleEn        *string `json:"titleEn"`
	TitleAr        *string `json:"titleAr"`
	BeforeImageURL *string `json:"beforeImageUrl"`
	AfterImageURL  *string `json:"afterImageUrl"`
	Order          *int    `json:"order"`
	Published      *bool   `json:"published"`
}

func ValidateUpdateBeforeAfterInput(input UpdateBeforeAfterInput) []ValidationError {
	var errs []ValidationError

	if input.TitleEn != nil {
		errs = required(errs, "titleEn", *input.TitleEn)
	}
	if input.TitleAr != nil {
		errs = required(errs, "titleAr", *input.TitleAr)
	}
	if input.BeforeImageURL != nil && !isValidURL(*input.BeforeImageURL) {
		errs = append(errs, ValidationError{"beforeImageUrl", "must be a valid URL"})
	}
	if input.AfterImageURL != nil && !isValidURL(*input.AfterImageURL) {
		errs = append(errs, ValidationError{"afterImageUrl", "must be a valid URL"})
	}

	return errs
}

func (input UpdateBeforeAfterInput) Apply(b *entity.BeforeAfterItem) {
	if input.TitleEn != nil {
		b.TitleEn = *input.TitleEn
	}
	if input.TitleAr != nil {
		b.TitleAr = *input.TitleAr
	}
	if input.BeforeImageURL != nil {
		b.BeforeImageURL = *input.BeforeImageURL
	}
	if input.AfterImageURL != nil {
		b.AfterImageURL = *input.AfterImageURL
	}
	if input.Order != nil {
		b.Order = *input.Order
	}
	if input.Published != nil {
		b.Published = *input.Published
	}
}

type SubscribeInput struct {
	Email string `json:"email"`
}

func ValidateSubscribeInput(input SubscribeInput) []ValidationError {
	var errs []ValidationError

	if input.Email == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

type TranslateInput struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

func ValidateTranslateInput(input TranslateInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "text", input.Text)
	errs = required(errs, "from", input.From)
	errs = required(errs, "to", input.To)

	return errs
}
