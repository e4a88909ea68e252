package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type GalleryHandler struct {
	galleryRepo entity.GalleryRepositoryInterface
}

func NewGalleryHandler(galleryRepo entity.GalleryRepositoryInterface) *GalleryHandler {
	return &GalleryHandler{galleryRepo: galleryRepo}
}

func (h *GalleryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 50)

	filter := entity.ContentFilter{
		Category:      query.Get("category"),
		PublishedOnly: true,
		Page:          page.Page,
		PageSize:      page.PageSize,
	}

	images, total, err := h.galleryRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, images, filter.Page, filter.PageSize, total)
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 50)

	filter := entity.ContentFilter{
		Category: query.Get("category"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	images, total, err := h.galleryRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, images, filter.Page, filter.PageSize, total)
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateGalleryImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateGalleryImageInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	image := entity.NewGalleryImage(input.ImageURL, input.Category)
	image.TitleEn = input.TitleEn
	image.TitleAr = input.TitleAr
	image.Order = input.Order
	if input.Published != nil {
		image.Published = *input.Published
	}

	if err := h.galleryRepo.Create(r.Context(), image); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, image, "")
}

func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	image, err := h.galleryRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, image, "")
}

func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateGalleryImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateGalleryImageInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	image, err := h.galleryRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(image)

	if err := h.galleryRepo.Update(r.Context(), image); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, image, "")
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.galleryRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
