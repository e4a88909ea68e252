package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type TechnicalSpecHandler struct {
	repo entity.TechnicalSpecRepositoryInterface
}

func NewTechnicalSpecHandler(repo entity.TechnicalSpecRepositoryInterface) *TechnicalSpecHandler {
	return &TechnicalSpecHandler{repo: repo}
}

func (h *TechnicalSpecHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 50)

	filter := entity.ContentFilter{
		Category:      query.Get("category"),
		PublishedOnly: true,
		Page:          page.Page,
		PageSize:      page.PageSize,
	}

	items, total, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, filter.Page, filter.PageSize, total)
}

func (h *TechnicalSpecHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 50)

	filter := entity.ContentFilter{
		Category: query.Get("category"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	items, total, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, filter.Page, filter.PageSize, total)
}

func (h *TechnicalSpecHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateTechnicalSpecInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateTechnicalSpecInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	spec := entity.NewTechnicalSpec(input.NameEn, input.NameAr, input.ValueEn, input.ValueAr)
	spec.Category = input.Category
	spec.Order = input.Order
	if input.Published != nil {
		spec.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), spec); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, spec, "")
}

func (h *TechnicalSpecHandler) Get(w http.ResponseWriter, r *http.Request) {
	spec, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, spec, "")
}

func (h *TechnicalSpecHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateTechnicalSpecInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateTechnicalSpecInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	spec, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(spec)

	if err := h.repo.Update(r.Context(), spec); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, spec, "")
}

func (h *TechnicalSpecHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
