package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/queue"
)

func TestCreateLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewLeadHandler(mockRepo, nil)

	body := []byte(`{"name":"Ahmed Hassan","email":"ahmed@example.com","source":"REFERRAL","priority":"HIGH"}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool        `json:"success"`
		Data    entity.Lead `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Ahmed Hassan", envelope.Data.Name)
	assert.Equal(t, entity.LeadStatusNew, envelope.Data.Status)
	assert.Equal(t, entity.LeadPriorityHigh, envelope.Data.Priority)
	assert.NotEmpty(t, envelope.Data.ID)
	mockRepo.AssertExpectations(t)
}

func TestCreateLeadValidationEnumeratesFields(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	handler := NewLeadHandler(mockRepo, nil)

	body := []byte(`{"phone":"+971501234567"}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Validation failed", envelope.Error)
	assert.Contains(t, envelope.Details, "name: is required")
	assert.Contains(t, envelope.Details, "email: is required")
	assert.Contains(t, envelope.Details, "source: is required")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetLeadNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	handler := NewLeadHandler(mockRepo, nil)

	req := httptest.NewRequest("GET", "/api/leads/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLeadAnyStatusTransition(t *testing.T) {
	lead := entity.NewLead("Sara", "sara@example.com", "", "", entity.LeadSourcePhone)
	lead.Status = entity.LeadStatusConverted

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Status == entity.LeadStatusNew
	})).Return(nil)

	handler := NewLeadHandler(mockRepo, nil)

	// CONVERTED back to NEW is allowed.
	body := []byte(`{"status":"NEW"}`)
	req := httptest.NewRequest("PUT", "/api/leads/"+lead.ID, bytes.NewBuffer(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", lead.ID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestLeadStats(t *testing.T) {
	stats := &entity.LeadStats{
		Total:      3,
		ByStatus:   map[string]int{"NEW": 2, "CONTACTED": 1},
		BySource:   map[string]int{"WEBSITE": 3},
		ByPriority: map[string]int{"MEDIUM": 3},
	}

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Stats", mock.Anything).Return(stats, nil)

	handler := NewLeadHandler(mockRepo, nil)

	req := httptest.NewRequest("GET", "/api/leads/stats", nil)
	rec := httptest.NewRecorder()

	handler.Stats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool             `json:"success"`
		Data    entity.LeadStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.Total)
	assert.Equal(t, 2, envelope.Data.ByStatus["NEW"])
}

func TestListLeadsPageSizeClamp(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f entity.LeadFilter) bool {
		return f.PageSize == 100 && f.Page == 1
	})).Return([]*entity.Lead{}, 0, nil)

	handler := NewLeadHandler(mockRepo, nil)

	req := httptest.NewRequest("GET", "/api/leads?pageSize=5000", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateLeadPublishesNotification(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", mock.Anything, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Kind == queue.NotificationKindLead && p.Email == "khalid@example.com"
	})).Return(nil)

	handler := NewLeadHandler(mockRepo, mockProducer)

	body := []byte(`{"name":"Khalid Noor","email":"khalid@example.com","source":"EXHIBITION"}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockProducer.AssertExpectations(t)
}

func TestCreateLeadPublishFailureStillCreates(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockProducer := new(MockNotificationProducer)
	mockProducer.On("PublishNotification", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	handler := NewLeadHandler(mockRepo, mockProducer)

	body := []byte(`{"name":"Layla","email":"layla@example.com","source":"PHONE"}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
