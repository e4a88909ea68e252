package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

// TranslationHandler manages the keyed UI copy strings consumed by the
// frontend i18n layer.
type TranslationHandler struct {
	repo entity.SiteTranslationRepositoryInterface
}

func NewTranslationHandler(repo entity.SiteTranslationRepositoryInterface) *TranslationHandler {
	return &TranslationHandler{repo: repo}
}

// ListPublic returns every translation string. Translations carry no
// published flag: a key either exists or it does not.
func (h *TranslationHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 100)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	h.ListPublic(w, r)
}

func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateTranslationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateTranslationInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	translation := entity.NewSiteTranslation(input.Key, input.En, input.Ar)

	if err := h.repo.Create(r.Context(), translation); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, translation, "")
}

func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	translation, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, translation, "")
}

func (h *TranslationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateTranslationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateTranslationInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	translation, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(translation)

	if err := h.repo.Update(r.Context(), translation); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, translation, "")
}

func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
