package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type SubscriberHandler struct {
	subscriberRepo entity.SubscriberRepositoryInterface
	rateLimiter    *RateLimiter
}

func NewSubscriberHandler(subscriberRepo entity.SubscriberRepositoryInterface) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberRepo: subscriberRepo,
		rateLimiter:    NewRateLimiter(10, time.Minute),
	}
}

// Subscribe is the public newsletter signup.
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input validation.SubscribeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateSubscribeInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	subscriber := entity.NewSubscriber(input.Email)
	if err := h.subscriberRepo.Create(r.Context(), subscriber); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, subscriber, "Subscribed")
}

func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := validation.ParsePagination(query, 50)

	filter := entity.SubscriberFilter{
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	if raw := query.Get("verified"); raw != "" {
		if verified, err := strconv.ParseBool(raw); err == nil {
			filter.Verified = &verified
		}
	}

	subscribers, total, err := h.subscriberRepo.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondPaginated(w, subscribers, filter.Page, filter.PageSize, total)
}

// Create lets an admin add a subscriber directly, skipping the rate limit.
func (h *SubscriberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input validation.SubscribeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateSubscribeInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	subscriber := entity.NewSubscriber(input.Email)
	if err := h.subscriberRepo.Create(r.Context(), subscriber); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, subscriber, "")
}
