package validation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func TestParsePaginationDefaults(t *testing.T) {
	p := ParsePagination(url.Values{}, 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestParsePaginationClampsPageSize(t *testing.T) {
	query := url.Values{"pageSize": {"5000"}}
	p := ParsePagination(query, 20)
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestParsePaginationSubFloorFallsBack(t *testing.T) {
	query := url.Values{"page": {"0"}, "pageSize": {"-3"}}
	p := ParsePagination(query, 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	query = url.Values{"page": {"abc"}, "pageSize": {"x"}}
	p = ParsePagination(query, 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestValidateCreateLeadInputEnumeratesAllFields(t *testing.T) {
	errs := ValidateCreateLeadInput(CreateLeadInput{
		Email:  "not-an-email",
		Source: "CARRIER_PIGEON",
		Status: "SLEEPING",
	})

	fields := Fields(errs)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "source")
	assert.Contains(t, fields, "status")
	assert.Len(t, errs, 4)
}

func TestValidateCreateLeadInputValid(t *testing.T) {
	errs := ValidateCreateLeadInput(CreateLeadInput{
		Name:   "Ahmed",
		Email:  "ahmed@example.com",
		Source: entity.LeadSourceExhibit,
	})
	assert.Empty(t, errs)
}

func TestValidateUpdateLeadInputPresentFieldsChecked(t *testing.T) {
	bad := "not-a-status"
	errs := ValidateUpdateLeadInput(UpdateLeadInput{Status: &bad})
	assert.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)

	good := entity.LeadStatusLost
	errs = ValidateUpdateLeadInput(UpdateLeadInput{Status: &good})
	assert.Empty(t, errs)
}

func TestUpdateLeadInputApplyPartial(t *testing.T) {
	lead := entity.NewLead("Ahmed", "ahmed@example.com", "", "", entity.LeadSourceWebsite)

	notes := "called back, site visit on Tuesday"
	status := entity.LeadStatusContacted
	input := UpdateLeadInput{Notes: &notes, Status: &status}
	input.Apply(lead)

	assert.Equal(t, "Ahmed", lead.Name)
	assert.Equal(t, entity.LeadStatusContacted, lead.Status)
	assert.Equal(t, notes, lead.Notes)
}

func TestValidateCreateTestimonialRating(t *testing.T) {
	base := CreateTestimonialInput{
		NameEn:  "Omar",
		NameAr:  "عمر",
		QuoteEn: "Great work",
		QuoteAr: "عمل رائع",
	}

	for _, rating := range []int{0, 6, -1} {
		input := base
		input.Rating = rating
		errs := ValidateCreateTestimonialInput(input)
		assert.Len(t, errs, 1, "rating %d must be rejected", rating)
		assert.Equal(t, "rating", errs[0].Field)
	}

	input := base
	input.Rating = 5
	assert.Empty(t, ValidateCreateTestimonialInput(input))
}

func TestValidateCreateProjectInputSlug(t *testing.T) {
	base := CreateProjectInput{
		TitleEn:  "Marina Villa",
		TitleAr:  "فيلا المارينا",
		Category: entity.ProjectCategoryVilla,
	}

	for _, slug := range []string{"Marina-Villa", "marina villa", "-marina", "marina-", ""} {
		input := base
		input.Slug = slug
		errs := ValidateCreateProjectInput(input)
		assert.NotEmpty(t, errs, "slug %q must be rejected", slug)
	}

	input := base
	input.Slug = "marina-villa-2024"
	assert.Empty(t, ValidateCreateProjectInput(input))
}

func TestValidateSubscribeInput(t *testing.T) {
	assert.NotEmpty(t, ValidateSubscribeInput(SubscribeInput{}))
	assert.NotEmpty(t, ValidateSubscribeInput(SubscribeInput{Email: "nope"}))
	assert.Empty(t, ValidateSubscribeInput(SubscribeInput{Email: "reader@example.com"}))
}

func TestValidateContactInputAllRequired(t *testing.T) {
	errs := ValidateContactInput(ContactInput{})
	assert.Len(t, errs, 4)

	errs = ValidateContactInput(ContactInput{
		Name:    "Sara",
		Email:   "sara@example.com",
		Phone:   "+971501234567",
		Message: "Quote please",
	})
	assert.Empty(t, errs)
}
