package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"github.com/albenaa/albenaa-api/internal/entity"
)

// Session is the identity attached to an authenticated request. Handlers use
// it for audit fields (createdBy, processedBy).
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore keeps sessions in memory keyed by a random cookie value.
// Sessions do not survive a restart; admins simply log in again.
type SessionStore struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	cookieName string
	ttl        time.Duration
}

func NewSessionStore(cookieName string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:   make(map[string]*Session),
		cookieName: cookieName,
		ttl:        ttl,
	}
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Issue creates a session for the user and sets the cookie.
func (s *SessionStore) Issue(w http.ResponseWriter, user *entity.User) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

// Clear drops the request's session, if any, and expires the cookie.
func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:   s.cookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// FromRequest is the auth guard: it returns the request's session or
// entity.ErrUnauthorized. Expired sessions are evicted on sight.
func (s *SessionStore) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	s.mu.RLock()
	session, exists := s.sessions[cookie.Value]
	s.mu.RUnlock()

	if !exists {
		return nil, entity.ErrUnauthorized
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
		return nil, entity.ErrUnauthorized
	}

	return session, nil
}
