package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type EngineeringMetricHandler struct {
	repo entity.EngineeringMetricRepositoryInterface
}

func NewEngineeringMetricHandler(repo entity.EngineeringMetricRepositoryInterface) *EngineeringMetricHandler {
	return &EngineeringMetricHandler{repo: repo}
}

func (h *EngineeringMetricHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{PublishedOnly: true, Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *EngineeringMetricHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *EngineeringMetricHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateEngineeringMetricInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateEngineeringMetricInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	metric := entity.NewEngineeringMetric(input.LabelEn, input.LabelAr, input.Value)
	metric.Unit = input.Unit
	metric.Order = input.Order
	if input.Published != nil {
		metric.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), metric); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, metric, "")
}

func (h *EngineeringMetricHandler) Get(w http.ResponseWriter, r *http.Request) {
	metric, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, metric, "")
}

func (h *EngineeringMetricHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateEngineeringMetricInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateEngineeringMetricInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	metric, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(metric)

	if err := h.repo.Update(r.Context(), metric); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, metric, "")
}

func (h *EngineeringMetricHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
