package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type TestimonialHandler struct {
	testimonialRepo entity.TestimonialRepositoryInterface
}

func NewTestimonialHandler(testimonialRepo entity.TestimonialRepositoryInterface) *TestimonialHandler {
	return &TestimonialHandler{testimonialRepo: testimonialRepo}
}

func (h *TestimonialHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	filter := entity.ContentFilter{
		PublishedOnly: true,
		Page:          page.Page,
		PageSize:      page.PageSize,
	}

	testimonials, total, err := h.testimonialRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, testimonials, filter.Page, filter.PageSize, total)
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	testimonials, total, err := h.testimonialRepo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, testimonials, page.Page, page.PageSize, total)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateTestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateTestimonialInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	testimonial := entity.NewTestimonial(input.NameEn, input.NameAr, input.QuoteEn, input.QuoteAr, input.Rating)
	testimonial.RoleEn = input.RoleEn
	testimonial.RoleAr = input.RoleAr
	testimonial.Order = input.Order
	if input.Published != nil {
		testimonial.Published = *input.Published
	}

	if err := h.testimonialRepo.Create(r.Context(), testimonial); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, testimonial, "")
}

func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	testimonial, err := h.testimonialRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, testimonial, "")
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateTestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateTestimonialInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	testimonial, err := h.testimonialRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(testimonial)

	if err := h.testimonialRepo.Update(r.Context(), testimonial); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, testimonial, "")
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonialRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
