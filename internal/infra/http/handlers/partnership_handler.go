package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type PartnershipHandler struct {
	repo entity.PartnershipRepositoryInterface
}

func NewPartnershipHandler(repo entity.PartnershipRepositoryInterface) *PartnershipHandler {
	return &PartnershipHandler{repo: repo}
}

func (h *PartnershipHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{PublishedOnly: true, Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *PartnershipHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *PartnershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreatePartnershipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreatePartnershipInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	partnership := entity.NewPartnership(input.NameEn, input.NameAr)
	partnership.LogoURL = input.LogoURL
	partnership.WebsiteURL = input.WebsiteURL
	partnership.Order = input.Order
	if input.Published != nil {
		partnership.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), partnership); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, partnership, "")
}

func (h *PartnershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	partnership, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, partnership, "")
}

func (h *PartnershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdatePartnershipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdatePartnershipInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	partnership, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(partnership)

	if err := h.repo.Update(r.Context(), partnership); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, partnership, "")
}

func (h *PartnershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
