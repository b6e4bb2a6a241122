package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orcahelper/orcahelper/internal/middleware"
	"github.com/orcahelper/orcahelper/internal/utils"
)

type createProductRequest struct {
	Name       string  `validate:"required,min=3,max=50" json:"name"`
	DateExpire string  `validate:"omitempty,datetime=2006-01-02" json:"date_expire"`
	Price      float64 `validate:"required,gt=0" json:"price"`
}

type updateProductRequest struct {
	Name       string  `validate:"omitempty,min=3,max=50" json:"name"`
	DateExpire string  `validate:"omitempty,datetime=2006-01-02" json:"date_expire"`
	Price      float64 `validate:"omitempty,gt=0" json:"price"`
}

// CreateProduct adds a product to the caller's list.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	var body createProductRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	expiresAt, err := parseDate(body.DateExpire)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	product, err := h.products.Create(user.Id, body.Name, expiresAt, body.Price)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// GetProducts lists the caller's products.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

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

	products, err := h.products.List(user.Id, skip, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProduct returns one of the caller's products.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	productId, err := parseIntParam(chi.URLParam(r, "product_id"), "product_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	product, err := h.products.ById(productId, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProduct modifies one of the caller's products.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	productId, err := parseIntParam(chi.URLParam(r, "product_id"), "product_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body updateProductRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	expiresAt, err := parseDate(body.DateExpire)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	product, err := h.products.Update(productId, user.Id, body.Name, expiresAt, body.Price)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// DeleteProduct removes one of the caller's products.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	productId, err := parseIntParam(chi.URLParam(r, "product_id"), "product_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.products.Delete(productId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
