package handler

import (
	"net/http"

	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/utils"
)

type loginRequest struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login verifies credentials and returns a bearer token. The token is
// also echoed in the Authorization response header, mirroring the
// historical client contract.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds loginRequest
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(domain.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+accessToken)
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: accessToken, TokenType: "bearer"})
}
