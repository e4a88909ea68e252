package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func TestGetProjectPublic(t *testing.T) {
	project := entity.NewProject("marina-villa", "Marina Villa", "فيلا المارينا", "VILLA")
	project.Published = true

	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	handler := NewProjectHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/projects/"+project.ID, nil)
	req = withURLParam(req, "id", project.ID)
	rec := httptest.NewRecorder()

	handler.GetPublic(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool           `json:"success"`
		Data    entity.Project `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "marina-villa", envelope.Data.Slug)
}

func TestGetProjectPublicUnpublished(t *testing.T) {
	project := entity.NewProject("draft-tower", "Draft Tower", "برج مسودة", "COMMERCIAL")
	project.Published = false

	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	handler := NewProjectHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/projects/"+project.ID, nil)
	req = withURLParam(req, "id", project.ID)
	rec := httptest.NewRecorder()

	handler.GetPublic(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Not found"}`, strings.TrimSpace(rec.Body.String()))
}

func TestGetProjectPublicMissing(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, "no-such-id").Return(nil, entity.ErrNotFound)

	handler := NewProjectHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/projects/no-such-id", nil)
	req = withURLParam(req, "id", "no-such-id")
	rec := httptest.NewRecorder()

	handler.GetPublic(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
