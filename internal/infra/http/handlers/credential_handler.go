package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type CredentialHandler struct {
	repo entity.CredentialRepositoryInterface
}

func NewCredentialHandler(repo entity.CredentialRepositoryInterface) *CredentialHandler {
	return &CredentialHandler{repo: repo}
}

func (h *CredentialHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{PublishedOnly: true, Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	items, total, err := h.repo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, items, page.Page, page.PageSize, total)
}

func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateCredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateCredentialInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	credential := entity.NewCredential(input.TitleEn, input.TitleAr)
	credential.Issuer = input.Issuer
	credential.Year = input.Year
	credential.ImageURL = input.ImageURL
	credential.Order = input.Order
	if input.Published != nil {
		credential.Published = *input.Published
	}

	if err := h.repo.Create(r.Context(), credential); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, credential, "")
}

func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	credential, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, credential, "")
}

func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateCredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateCredentialInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	credential, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(credential)

	if err := h.repo.Update(r.Context(), credential); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, credential, "")
}

func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
