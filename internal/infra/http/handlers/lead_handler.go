package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/http/middleware"
	"github.com/albenaa/albenaa-api/internal/infra/queue"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type LeadHandler struct {
	leadRepo entity.LeadRepositoryInterface
	producer queue.ProducerInterface
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface, producer queue.ProducerInterface) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo, producer: producer}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 20)

	filter := entity.LeadFilter{
		Status:     query.Get("status"),
		Source:     query.Get("source"),
		Priority:   query.Get("priority"),
		AssignedTo: query.Get("assignedTo"),
		Page:       page.Page,
		PageSize:   page.PageSize,
	}

	leads, total, err := h.leadRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondPaginated(w, leads, filter.Page, filter.PageSize, total)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateCreateLeadInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Message, input.Source)
	if input.Status != "" {
		lead.Status = input.Status
	}
	if input.Priority != "" {
		lead.Priority = input.Priority
	}
	lead.AssignedTo = input.AssignedTo
	lead.Notes = input.Notes

	if err := h.leadRepo.Create(r.Context(), lead); err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.Source)
	h.notify(lead)

	respondSuccess(w, http.StatusCreated, lead, "")
}

// notify publishes the lead event. Best-effort, same as the contact form:
// a broker outage must not block the admin who just entered the lead.
func (h *LeadHandler) notify(lead *entity.Lead) {
	if h.producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.producer.PublishNotification(ctx, queue.NotificationPayload{
		Kind:       queue.NotificationKindLead,
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Message:    lead.Message,
		Source:     lead.Source,
		ReceivedAt: lead.CreatedAt,
	})
	if err != nil {
		log.Printf("⚠️ Failed to publish lead notification for %s: %v", lead.ID, err)
		middleware.RecordNotificationError("publish")
	}
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.leadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, lead, "")
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input validation.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateUpdateLeadInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	lead, err := h.leadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	input.Apply(lead)

	if err := h.leadRepo.Update(r.Context(), lead); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, lead, "")
}

// Stats returns the aggregated pipeline counts for the admin dashboard.
func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadRepo.Stats(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, "")
}
