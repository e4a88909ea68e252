package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type ProcessStepHandler struct {
	repo entity.ProcessStepRepositoryInterface
}

func NewProcessStepHandler(repo entity.ProcessStepRepositoryInterface) *ProcessStepHandler {
	return &ProcessStepHandler{repo: repo}
}

func (h *ProcessStepHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{PublishedOnly: true, Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *ProcessStepHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *ProcessStepHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateProcessStepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateProcessStepInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	step := entity.NewProcessStep(input.StepNumber, input.TitleEn, input.TitleAr)
	step.DescriptionEn = input.DescriptionEn
	step.DescriptionAr = input.DescriptionAr
	step.Order = input.Order
	if input.Published != nil {
		step.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), step); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, step, "")
}

func (h *ProcessStepHandler) Get(w http.ResponseWriter, r *http.Request) {
	step, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, step, "")
}

func (h *ProcessStepHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateProcessStepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateProcessStepInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	step, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(step)

	if err := h.repo.Update(r.Context(), step); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, step, "")
}

func (h *ProcessStepHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
