package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/auth"
)

func TestRequireSessionRejectsAnonymous(t *testing.T) {
	store := auth.NewSessionStore("albenaa_session", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	rec := httptest.NewRecorder()

	RequireSession(store)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `{"error":"Unauthorized"}`, strings.TrimSpace(rec.Body.String()))
}

func TestRequireSessionPassesWithValidCookie(t *testing.T) {
	store := auth.NewSessionStore("albenaa_session", time.Hour)
	user := entity.NewUser("editor@albenaa.com", "Editor", entity.RoleEditor, "hash")

	issueRec := httptest.NewRecorder()
	_, err := store.Issue(issueRec, user)
	assert.NoError(t, err)

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		session := auth.SessionFrom(r.Context())
		assert.NotNil(t, session)
		assert.Equal(t, user.ID, session.UserID)
	})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.AddCookie(issueRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()

	RequireSession(store)(next).ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSessionRejectsExpired(t *testing.T) {
	store := auth.NewSessionStore("albenaa_session", -time.Minute)
	user := entity.NewUser("editor@albenaa.com", "Editor", entity.RoleEditor, "hash")

	issueRec := httptest.NewRecorder()
	_, err := store.Issue(issueRec, user)
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.AddCookie(issueRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()

	RequireSession(store)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
