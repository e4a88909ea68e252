package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type ProjectHandler struct {
	projectRepo entity.ProjectRepositoryInterface
}

func NewProjectHandler(projectRepo entity.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

// ListPublic serves the portfolio page: published projects only, fixed order.
func (h *ProjectHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 20)

	filter := entity.ContentFilter{
		Category:      query.Get("category"),
		PublishedOnly: true,
		Page:          page.Page,
		PageSize:      page.PageSize,
	}

	projects, total, err := h.projectRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, projects, filter.Page, filter.PageSize, total)
}

func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectRepo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if !project.Published {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondSuccess(w, http.StatusOK, project, "")
}

// GetPublic serves a single project to anonymous visitors. Unpublished rows
// stay invisible, same as the slug route.
func (h *ProjectHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if !project.Published {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondSuccess(w, http.StatusOK, project, "")
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 20)

	filter := entity.ContentFilter{
		Category: query.Get("category"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	projects, total, err := h.projectRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, projects, filter.Page, filter.PageSize, total)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateProjectInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	project := entity.NewProject(input.Slug, input.TitleEn, input.TitleAr, input.Category)
	project.DescriptionEn = input.DescriptionEn
	project.DescriptionAr = input.DescriptionAr
	project.Location = input.Location
	project.CoverImageURL = input.CoverImageURL
	project.Featured = input.Featured
	project.Order = input.Order
	if input.Published != nil {
		project.Published = *input.Published
	}

	if err := h.projectRepo.Create(r.Context(), project); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, project, "")
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, project, "")
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateProjectInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	project, err := h.projectRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(project)

	if err := h.projectRepo.Update(r.Context(), project); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, project, "")
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Deleted")
}
