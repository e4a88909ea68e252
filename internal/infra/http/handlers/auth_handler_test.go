package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/auth"
)

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return entity.NewUser("admin@albenaa.com", "Admin", entity.RoleAdmin, string(hash))
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	user := testUser(t, "correct-horse")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	sessions := auth.NewSessionStore("albenaa_session", time.Hour)
	handler := NewAuthHandler(mockRepo, sessions)

	body := []byte(`{"email":"admin@albenaa.com","password":"correct-horse"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "albenaa_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "correct-horse")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	sessions := auth.NewSessionStore("albenaa_session", time.Hour)
	handler := NewAuthHandler(mockRepo, sessions)

	body := []byte(`{"email":"admin@albenaa.com","password":"wrong"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginUnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@albenaa.com").Return(nil, entity.ErrNotFound)

	sessions := auth.NewSessionStore("albenaa_session", time.Hour)
	handler := NewAuthHandler(mockRepo, sessions)

	body := []byte(`{"email":"ghost@albenaa.com","password":"whatever1"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithoutSession(t *testing.T) {
	mockRepo := new(MockUserRepository)
	sessions := auth.NewSessionStore("albenaa_session", time.Hour)
	handler := NewAuthHandler(mockRepo, sessions)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `{"error":"Unauthorized"}`, strings.TrimSpace(rec.Body.String()))
}

func TestLoginThenMe(t *testing.T) {
	user := testUser(t, "correct-horse")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	sessions := auth.NewSessionStore("albenaa_session", time.Hour)
	handler := NewAuthHandler(mockRepo, sessions)

	loginReq := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"email":"admin@albenaa.com","password":"correct-horse"}`))
	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, loginReq)
	assert.Equal(t, http.StatusOK, loginRec.Code)

	meReq := httptest.NewRequest("GET", "/api/auth/me", nil)
	meReq.AddCookie(loginRec.Result().Cookies()[0])
	meRec := httptest.NewRecorder()
	handler.Me(meRec, meReq)

	assert.Equal(t, http.StatusOK, meRec.Code)

	var envelope struct {
		Success bool         `json:"success"`
		Data    auth.Session `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &envelope))
	assert.Equal(t, user.Email, envelope.Data.Email)
	assert.Equal(t, entity.RoleAdmin, envelope.Data.Role)
}
