package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/orcahelper/orcahelper/internal/domain"
	internal_errors "github.com/orcahelper/orcahelper/internal/errors"
)

// All product reads and writes are scoped by owner id. A product that
// belongs to somebody else is reported as not found, not as forbidden,
// so ids cannot be probed.

// =========================================================================
// Public Methods (satisfy the service.ProductStorage interface)
// =========================================================================

// SaveProduct inserts a product for its owner and returns the stored
// record with its generated id.
func (s *Storage) SaveProduct(product domain.Product) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var saved domain.Product
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveProduct(tx, product)
		return err
	})
	return saved, err
}

// Product fetches one product owned by userId.
func (s *Storage) Product(id domain.ProductId, userId domain.UserId) (domain.Product, error) {
	return s.product(s.db, id, userId)
}

// ProductsByUser returns a page of the owner's products ordered by id.
func (s *Storage) ProductsByUser(userId domain.UserId, skip, limit int) ([]domain.Product, error) {
	return s.productsByUser(s.db, userId, skip, limit)
}

// UpdateProduct rewrites name, expiry date and price of an owned product.
func (s *Storage) UpdateProduct(product domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateProduct(tx, product)
	})
}

// DeleteProduct removes one product owned by userId.
func (s *Storage) DeleteProduct(id domain.ProductId, userId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteProduct(tx, id, userId)
	})
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveProduct(q Querier, product domain.Product) (domain.Product, error) {
	saved := product
	err := q.QueryRow("INSERT INTO products(name, user_id, expires_at, price) VALUES($1, $2, $3, $4) RETURNING id",
		product.Name, product.UserId, product.ExpiresAt, product.Price).Scan(&saved.Id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return saved, nil
}

func (s *Storage) product(q Querier, id domain.ProductId, userId domain.UserId) (domain.Product, error) {
	var product domain.Product
	err := q.QueryRow("SELECT id, name, user_id, expires_at, price FROM products WHERE id = $1 AND user_id = $2", id, userId).
		Scan(&product.Id, &product.Name, &product.UserId, &product.ExpiresAt, &product.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, &internal_errors.ErrorWithStatusCode{Message: "Product not found", StatusCode: http.StatusNotFound}
		}
		return domain.Product{}, fmt.Errorf("failed to query product: %w", err)
	}
	return product, nil
}

func (s *Storage) productsByUser(q Querier, userId domain.UserId, skip, limit int) ([]domain.Product, error) {
	rows, err := q.Query("SELECT id, name, user_id, expires_at, price FROM products WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3",
		userId, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.Id, &product.Name, &product.UserId, &product.ExpiresAt, &product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *Storage) updateProduct(q Querier, product domain.Product) error {
	result, err := q.Exec("UPDATE products SET name = $1, expires_at = $2, price = $3 WHERE id = $4 AND user_id = $5",
		product.Name, product.ExpiresAt, product.Price, product.Id, product.UserId)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for product update: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Product not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) deleteProduct(q Querier, id domain.ProductId, userId domain.UserId) error {
	result, err := q.Exec("DELETE FROM products WHERE id = $1 AND user_id = $2", id, userId)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for product deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Product not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
