package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type UserHandler struct {
	userRepo entity.UserRepositoryInterface
}

func NewUserHandler(userRepo entity.UserRepositoryInterface) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

type updatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.NewPassword) < 8 {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	userID := chi.URLParam(r, "id")
	if _, err := h.userRepo.FindByID(r.Context(), userID); err != nil {
		respondDomainError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if err := h.userRepo.UpdatePassword(r.Context(), userID, string(hash)); err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil, "Password updated")
}
