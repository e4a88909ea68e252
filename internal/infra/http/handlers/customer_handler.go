package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/auth"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type CustomerHandler struct {
	customerRepo    entity.CustomerRepositoryInterface
	interactionRepo entity.InteractionRepositoryInterface
}

func NewCustomerHandler(customerRepo entity.CustomerRepositoryInterface, interactionRepo entity.InteractionRepositoryInterface) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo, interactionRepo: interactionRepo}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 20)

	filter := entity.CustomerFilter{
		Search:   query.Get("search"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	customers, total, err := h.customerRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondPaginated(w, customers, filter.Page, filter.PageSize, total)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateCustomerInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	customer, err := entity.NewCustomer(input.Name, input.Email, input.Phone, input.Company)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer.LeadID = input.LeadID
	customer.Notes = input.Notes

	if err := h.customerRepo.Create(r.Context(), customer); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, customer, "")
}

type customerDetail struct {
	*entity.Customer
	Interactions []*entity.Interaction `json:"interactions"`
}

// Get returns the customer together with its interaction history.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	interactions, err := h.interactionRepo.FindByCustomerID(r.Context(), customer.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if interactions == nil {
		interactions = []*entity.Interaction{}
	}

	respondSuccess(w, http.StatusOK, customerDetail{Customer: customer, Interactions: interactions}, "")
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateCustomerInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	customer, err := h.customerRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(customer)

	if err := h.customerRepo.Update(r.Context(), customer); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, customer, "")
}

// CreateInteraction appends a touchpoint to the customer's history. The
// customer must exist; the interaction is attributed to the session user.
func (h *CustomerHandler) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var input validation.CreateInteractionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateInteractionInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	interaction := entity.NewInteraction(customer.ID, input.Type, input.Direction, input.Subject)
	interaction.Content = input.Content
	interaction.Outcome = input.Outcome
	interaction.ScheduledAt = input.ScheduledAt
	interaction.CompletedAt = input.CompletedAt
	interaction.Metadata = input.Metadata
	if session := auth.SessionFrom(r.Context()); session != nil {
		interaction.CreatedBy = session.UserID
	}

	if err := h.interactionRepo.Create(r.Context(), interaction); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, interaction, "")
}
