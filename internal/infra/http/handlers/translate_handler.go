package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/albenaa/albenaa-api/internal/infra/integration/translate"
	"github.com/albenaa/albenaa-api/internal/validation"
)

// TranslateHandler proxies machine translation for the admin editor, so
// editors can draft in one language and prefill the other.
type TranslateHandler struct {
	client translate.ClientInterface
}

func NewTranslateHandler(client translate.ClientInterface) *TranslateHandler {
	return &TranslateHandler{client: client}
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		respondError(w, http.StatusServiceUnavailable, "Translation service is not configured")
		return
	}

	var input validation.TranslateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validation.ValidateTranslateInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	translated, err := h.client.Translate(r.Context(), input.Text, input.From, input.To)
	if err != nil {
		log.Printf("⚠️ Translate request failed: %v", err)
		respondError(w, http.StatusBadGateway, "Translation service unavailable")
		return
	}

	respondSuccess(w, http.StatusOK, translateResponse{TranslatedText: translated}, "")
}
