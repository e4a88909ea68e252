package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func TestCreatePartnershipDefaults(t *testing.T) {
	mockRepo := new(MockPartnershipRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Partnership) bool {
		return p.Published && p.Order == 0
	})).Return(nil)

	handler := NewPartnershipHandler(mockRepo)

	// No published or order in the payload: defaults apply.
	body := []byte(`{"nameEn":"Emirates Steel","nameAr":"حديد الإمارات"}`)
	req := httptest.NewRequest("POST", "/api/admin/partnerships", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool               `json:"success"`
		Data    entity.Partnership `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Published)
	assert.Equal(t, 0, envelope.Data.Order)
	mockRepo.AssertExpectations(t)
}

func TestCreatePartnershipExplicitUnpublished(t *testing.T) {
	mockRepo := new(MockPartnershipRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Partnership) bool {
		return !p.Published && p.Order == 5
	})).Return(nil)

	handler := NewPartnershipHandler(mockRepo)

	body := []byte(`{"nameEn":"Acme","nameAr":"أكمي","published":false,"order":5}`)
	req := httptest.NewRequest("POST", "/api/admin/partnerships", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeletePartnershipNotFound(t *testing.T) {
	mockRepo := new(MockPartnershipRepository)
	mockRepo.On("Delete", mock.Anything, "missing").Return(entity.ErrNotFound)

	handler := NewPartnershipHandler(mockRepo)

	req := httptest.NewRequest("DELETE", "/api/admin/partnerships/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Not found", envelope.Error)
}

func TestListPublicPartnershipsPublishedOnly(t *testing.T) {
	mockRepo := new(MockPartnershipRepository)
	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f entity.ContentFilter) bool {
		return f.PublishedOnly
	})).Return([]*entity.Partnership{}, 0, nil)

	handler := NewPartnershipHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/partnerships", nil)
	rec := httptest.NewRecorder()

	handler.ListPublic(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}
