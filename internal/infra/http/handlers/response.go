package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/validation"
)

type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type paginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

type paginatedEnvelope struct {
	Success    bool           `json:"success"`
	Data       any            `json:"data"`
	Pagination paginationMeta `json:"pagination"`
}

type errorEnvelope struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data, Message: message})
}

func respondPaginated(w http.ResponseWriter, items any, page, pageSize, total int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	writeJSON(w, http.StatusOK, paginatedEnvelope{
		Success: true,
		Data:    items,
		Pagination: paginationMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalCount: total,
		},
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Error: message})
}

func respondValidationErrors(w http.ResponseWriter, errs []validation.ValidationError) {
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, e.Error())
	}
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Validation failed", Details: details})
}

func respondUnauthorized(w http.ResponseWriter) {
	respondError(w, http.StatusUnauthorized, "Unauthorized")
}

// respondDomainError translates repository errors into the envelope. Unknown
// errors are logged server-side and surfaced as a generic 500: internal error
// text never reaches the client.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, entity.ErrUnauthorized):
		respondUnauthorized(w)
	case errors.Is(err, entity.ErrEmailAlreadySubscribed):
		respondError(w, http.StatusBadRequest, "Email already subscribed")
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		respondError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, entity.ErrSlugAlreadyExists):
		respondError(w, http.StatusBadRequest, "Slug already in use")
	case errors.Is(err, entity.ErrKeyAlreadyExists):
		respondError(w, http.StatusBadRequest, "Translation key already in use")
	default:
		log.Printf("handler: unexpected error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
