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
	"golang.org/x/crypto/bcrypt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdatePasswordTooShort(t *testing.T) {
	mockRepo := new(MockUserRepository)
	handler := NewUserHandler(mockRepo)

	body := []byte(`{"newPassword":"short"}`)
	req := httptest.NewRequest("PUT", "/api/admin/users/u-1/password", bytes.NewBuffer(body))
	req = withURLParam(req, "id", "u-1")
	rec := httptest.NewRecorder()

	handler.UpdatePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Password must be at least 8 characters long", envelope.Error)
	mockRepo.AssertNotCalled(t, "UpdatePassword")
}

func TestUpdatePasswordSuccess(t *testing.T) {
	user := entity.NewUser("admin@albenaa.com", "Admin", entity.RoleAdmin, "old-hash")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mockRepo.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("a-strong-password")) == nil
	})).Return(nil)

	handler := NewUserHandler(mockRepo)

	body := []byte(`{"newPassword":"a-strong-password"}`)
	req := httptest.NewRequest("PUT", "/api/admin/users/"+user.ID+"/password", bytes.NewBuffer(body))
	req = withURLParam(req, "id", user.ID)
	rec := httptest.NewRecorder()

	handler.UpdatePassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdatePasswordUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrNotFound)

	handler := NewUserHandler(mockRepo)

	body := []byte(`{"newPassword":"a-strong-password"}`)
	req := httptest.NewRequest("PUT", "/api/admin/users/ghost/password", bytes.NewBuffer(body))
	req = withURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()

	handler.UpdatePassword(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
