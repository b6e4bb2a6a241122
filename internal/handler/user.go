package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orcahelper/orcahelper/internal/errors"
	"github.com/orcahelper/orcahelper/internal/middleware"
	"github.com/orcahelper/orcahelper/internal/utils"
)

type createUserRequest struct {
	Name     string `validate:"required,min=3,max=50" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=8" json:"password"`
}

type updateUserRequest struct {
	Name     string `validate:"omitempty,min=3,max=50" json:"name"`
	Email    string `validate:"omitempty,email" json:"email"`
	Password string `validate:"omitempty,min=8" json:"password"`
}

// CreateUser registers a new account.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.users.Create(body.Name, body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// GetUsers lists registered users.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	skip, err := parseQueryInt(r, "skip", 0)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	limit, err := parseQueryInt(r, "limit", 100)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	users, err := h.users.List(skip, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMe returns the account of the authenticated caller.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// UpdateUser modifies the caller's own account.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userId, err := parseIntParam(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	caller := middleware.UserFromContext(r)
	if caller == nil || caller.Id != userId {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "You can only modify your own account", StatusCode: http.StatusForbidden})
		return
	}

	var body updateUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.users.Update(userId, body.Name, body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser removes the caller's own account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userId, err := parseIntParam(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	caller := middleware.UserFromContext(r)
	if caller == nil || caller.Id != userId {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "You can only delete your own account", StatusCode: http.StatusForbidden})
		return
	}

	if err := h.users.Delete(userId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
