package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type ServiceHandler struct {
	serviceRepo entity.ServiceRepositoryInterface
}

func NewServiceHandler(serviceRepo entity.ServiceRepositoryInterface) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

func (h *ServiceHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	filter := entity.ContentFilter{
		PublishedOnly: true,
		Page:          page.Page,
		PageSize:      page.PageSize,
	}

	services, total, err := h.serviceRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, services, filter.Page, filter.PageSize, total)
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page := validation.ParsePagination(r.URL.Query(), 50)

	services, total, err := h.serviceRepo.List(r.Context(), entity.ContentFilter{Page: page.Page, PageSize: page.PageSize})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, services, page.Page, page.PageSize, total)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateServiceInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	service := entity.NewService(input.TitleEn, input.TitleAr)
	service.DescriptionEn = input.DescriptionEn
	service.DescriptionAr = input.DescriptionAr
	service.Icon = input.Icon
	service.Order = input.Order
	if input.Published != nil {
		service.Published = *input.Published
	}

	if err := h.serviceRepo.Create(r.Context(), service); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, service, "")
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.serviceRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, service, "")
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateServiceInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	service, err := h.serviceRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(service)

	if err := h.serviceRepo.Update(r.Context(), service); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, service, "")
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serviceRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
