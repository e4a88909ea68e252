package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/albenaa/albenaa-api/internal/infra/auth"
)

type AuthHandler struct {
	userRepo entity.UserRepositoryInterface
	sessions *auth.SessionStore
}

func NewAuthHandler(userRepo entity.UserRepositoryInterface, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondDomainError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session, err := h.sessions.Issue(w, user)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, session, "")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	respondSuccess(w, http.StatusOK, nil, "Logged out")
}

// Me returns the identity behind the current session cookie.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.FromRequest(r)
	if err != nil {
		respondUnauthorized(w)
		return
	}
	respondSuccess(w, http.StatusOK, session, "")
}
