package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/queue"
)

func TestContactSubmitSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Source == entity.LeadSourceWebsite && l.Status == entity.LeadStatusNew
	})).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", mock.Anything, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Kind == queue.NotificationKindContact && p.Email == "fatima@example.com"
	})).Return(nil)

	handler := NewContactHandler(mockRepo, mockProducer)

	body := []byte(`{"name":"Fatima Ali","email":"fatima@example.com","phone":"+971501234567","message":"I want a villa renovation quote"}`)
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Submit(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestContactSubmitValidationEnumeratesFields(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	handler := NewContactHandler(mockRepo, nil)

	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Details, 4)
	mockRepo.AssertNotCalled(t, "Create")
}

// The broker being down must not lose the submission.
func TestContactSubmitPublishFailureStillAccepts(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	handler := NewContactHandler(mockRepo, mockProducer)

	body := []byte(`{"name":"Omar","email":"omar@example.com","phone":"0501234567","message":"Fit-out inquiry"}`)
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Submit(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestContactSubmitRateLimited(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewContactHandler(mockRepo, nil)

	body := `{"name":"Omar","email":"omar@example.com","phone":"0501234567","message":"hi"}`
	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(body))
		req.Header.Set("X-Real-IP", "203.0.113.9")
		rec := httptest.NewRecorder()
		handler.Submit(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
