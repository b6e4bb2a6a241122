package service

import (
	"net/http"
	"strings"

	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/errors"
	"github.com/orcahelper/orcahelper/internal/logger"
	"github.com/orcahelper/orcahelper/internal/utils/jwt"
	"github.com/orcahelper/orcahelper/internal/utils/password"
)

type AuthService interface {
	Login(creds domain.Credentials) (string, error)
	Resolve(tokenString string) (domain.User, error)
}

type AuthStorage interface {
	UserByEmail(email string) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     jwt.JwtService
}

func NewAuth(storage AuthStorage, jwt jwt.JwtService) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Login checks the credentials and returns an access token.
// Unknown email and wrong password are reported identically so that
// registered addresses cannot be enumerated.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
		}
		return "", err
	}

	if !password.Verify(creds.Password, user.PassHash) {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
	}

	token, err := a.jwt.NewToken(user.Email)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}

// Resolve is the authorization gate for protected operations: it verifies
// the token and loads the user it asserts. Any failure is a hard 401.
func (a *Auth) Resolve(tokenString string) (domain.User, error) {
	claims, err := a.jwt.DecodeToken(tokenString)
	if err != nil {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Invalid token", StatusCode: http.StatusUnauthorized}
	}

	user, err := a.storage.UserByEmail(claims.Subject)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, &errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusUnauthorized}
		}
		return domain.User{}, err
	}

	return user, nil
}

var _ AuthService = (*Auth)(nil)
