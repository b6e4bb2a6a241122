package service

import (
	"net/http"
	"time"

	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/errors"
)

type ProductService interface {
	Create(owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error)
	ById(id domain.ProductId, owner domain.UserId) (domain.Product, error)
	List(owner domain.UserId, skip, limit int) ([]domain.Product, error)
	Update(id domain.ProductId, owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error)
	Delete(id domain.ProductId, owner domain.UserId) error
}

type ProductStorage interface {
	SaveProduct(product domain.Product) (domain.Product, error)
	Product(id domain.ProductId, userId domain.UserId) (domain.Product, error)
	ProductsByUser(userId domain.UserId, skip, limit int) ([]domain.Product, error)
	UpdateProduct(product domain.Product) error
	DeleteProduct(id domain.ProductId, userId domain.UserId) error
}

type Products struct {
	storage ProductStorage
}

func NewProducts(storage ProductStorage) *Products {
	return &Products{storage: storage}
}

// Create adds a product to the owner's list. An expiry date in the past
// is rejected; nil means the product does not expire.
func (p *Products) Create(owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error) {
	if err := validateExpiry(expiresAt); err != nil {
		return domain.Product{}, err
	}

	return p.storage.SaveProduct(domain.Product{
		Name:      name,
		UserId:    owner,
		ExpiresAt: expiresAt,
		Price:     price,
	})
}

func (p *Products) ById(id domain.ProductId, owner domain.UserId) (domain.Product, error) {
	return p.storage.Product(id, owner)
}

func (p *Products) List(owner domain.UserId, skip, limit int) ([]domain.Product, error) {
	return p.storage.ProductsByUser(owner, skip, limit)
}

// Update overwrites the supplied fields of an owned product; zero values
// keep the stored ones, so the expiry date cannot be cleared, only moved.
func (p *Products) Update(id domain.ProductId, owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error) {
	if err := validateExpiry(expiresAt); err != nil {
		return domain.Product{}, err
	}

	product, err := p.storage.Product(id, owner)
	if err != nil {
		return domain.Product{}, err
	}

	if name != "" {
		product.Name = name
	}
	if expiresAt != nil {
		product.ExpiresAt = expiresAt
	}
	if price != 0 {
		product.Price = price
	}

	if err := p.storage.UpdateProduct(product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (p *Products) Delete(id domain.ProductId, owner domain.UserId) error {
	return p.storage.DeleteProduct(id, owner)
}

func validateExpiry(expiresAt *time.Time) error {
	if expiresAt == nil {
		return nil
	}
	// compare calendar dates: a product expiring today is still valid
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, expiresAt.Location())
	if expiresAt.Before(today) {
		return &errors.ErrorWithStatusCode{Message: "The date cannot be before today", StatusCode: http.StatusBadRequest}
	}
	return nil
}

var _ ProductService = (*Products)(nil)
