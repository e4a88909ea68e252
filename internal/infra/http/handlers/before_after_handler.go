package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type BeforeAfterHandler struct {
	repo entity.BeforeAfterRepositoryInterface
}

func NewBeforeAfterHandler(repo entity.BeforeAfterRepositoryInterface) *BeforeAfterHandler {
	return &BeforeAfterHandler{repo: repo}
}

func (h *BeforeAfterHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{PublishedOnly: true, Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *BeforeAfterHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *BeforeAfterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateBeforeAfterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateBeforeAfterInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	item := entity.NewBeforeAfterItem(input.TitleEn, input.TitleAr, input.BeforeImageURL, input.AfterImageURL)
	item.Order = input.Order
	if input.Published != nil {
		item.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), item); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, item, "")
}

func (h *BeforeAfterHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, item, "")
}

func (h *BeforeAfterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateBeforeAfterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateBeforeAfterInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	item, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(item)

	if err := h.repo.Update(r.Context(), item); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, item, "")
}

func (h *BeforeAfterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
