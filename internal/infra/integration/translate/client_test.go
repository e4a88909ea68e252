package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)

		var req translateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Luxury villa design", req.Q)
		assert.Equal(t, "en", req.Source)
		assert.Equal(t, "ar", req.Target)

		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "تصميم فيلا فاخرة"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	out, err := client.Translate(context.Background(), "Luxury villa design", "en", "ar")

	assert.NoError(t, err)
	assert.Equal(t, "تصميم فيلا فاخرة", out)
}

func TestTranslateServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "unsupported language pair"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Translate(context.Background(), "text", "en", "xx")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language pair")
}
