package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/http/middleware"
	"github.com/albenaa/albenaa-api/internal/infra/queue"
	"github.com/albenaa/albenaa-api/internal/validation"
)

// ContactHandler receives public contact-form submissions. Each submission
// becomes a lead with source WEBSITE and a notification event.
type ContactHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	producer    queue.ProducerInterface
	rateLimiter *RateLimiter
}

func NewContactHandler(leadRepo entity.LeadRepositoryInterface, producer queue.ProducerInterface) *ContactHandler {
	return &ContactHandler{
		leadRepo:    leadRepo,
		producer:    producer,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input validation.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateContactInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Message, entity.LeadSourceWebsite)
	if err := h.leadRepo.Create(ctx, lead); err != nil {
		respondDomainError(w, err)
		return
	}

	middleware.RecordContactMessage()
	middleware.RecordLeadCaptured(lead.Source)
	h.notify(lead)

	respondSuccess(w, http.StatusCreated, lead, "Thank you for contacting us. We will get back to you shortly.")
}

// notify publishes the notification event. Delivery is best-effort: a broker
// outage must not turn away a visitor who already gave us their details.
func (h *ContactHandler) notify(lead *entity.Lead) {
	if h.producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.producer.PublishNotification(ctx, queue.NotificationPayload{
		Kind:       queue.NotificationKindContact,
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Message:    lead.Message,
		Source:     lead.Source,
		ReceivedAt: lead.CreatedAt,
	})
	if err != nil {
		log.Printf("⚠️ Failed to publish contact notification for lead %s: %v", lead.ID, err)
		middleware.RecordNotificationError("publish")
	}
}
