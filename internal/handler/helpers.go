package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/errors"
)

const dateLayout = "2006-01-02"

// parseIntParam parses an integer URL parameter with a meaningful error.
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, &errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s: must be an integer", paramName),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}

// parseQueryInt reads an optional integer query parameter with a default.
func parseQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, &errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s: must be a non-negative integer", name),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}

// parseDate parses an optional "YYYY-MM-DD" value; empty means no date.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, &errors.ErrorWithStatusCode{
			Message:    "invalid date_expire: must be YYYY-MM-DD",
			StatusCode: http.StatusBadRequest,
		}
	}
	return &date, nil
}

type userResponse struct {
	Id        domain.UserId `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	CreatedAt time.Time     `json:"created_at"`
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{Id: user.Id, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt}
}

type productResponse struct {
	Id         domain.ProductId `json:"id"`
	Name       string           `json:"name"`
	FkUser     domain.UserId    `json:"fk_user"`
	DateExpire *string          `json:"date_expire"`
	Price      float64          `json:"price"`
}

func toProductResponse(product domain.Product) productResponse {
	resp := productResponse{
		Id:     product.Id,
		Name:   product.Name,
		FkUser: product.UserId,
		Price:  product.Price,
	}
	if product.ExpiresAt != nil {
		formatted := product.ExpiresAt.Format(dateLayout)
		resp.DateExpire = &formatted
	}
	return resp
}
