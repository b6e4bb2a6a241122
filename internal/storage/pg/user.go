package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/orcahelper/orcahelper/internal/domain"
	internal_errors "github.com/orcahelper/orcahelper/internal/errors"
)

// uniqueViolation is the postgres error code for unique constraint breaks.
const uniqueViolation = "23505"

// =========================================================================
// Public Methods (satisfy the service.UserStorage interface)
// =========================================================================

// SaveUser inserts a new user inside a transaction and returns the stored
// record with its generated id and creation timestamp.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// UserByEmail fetches a user by email using the main connection pool.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// UserById fetches a user by primary key.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userById(s.db, id)
}

// Users returns a page of users ordered by id.
func (s *Storage) Users(skip, limit int) ([]domain.User, error) {
	return s.users(s.db, skip, limit)
}

// UpdateUser rewrites name, email and password hash of an existing user.
func (s *Storage) UpdateUser(user domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateUser(tx, user)
	})
}

// DeleteUser removes a user; products are cleaned up by ON DELETE CASCADE.
func (s *Storage) DeleteUser(id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteUser(tx, id)
	})
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	saved := user
	err := q.QueryRow("INSERT INTO users(name, email, password_hash) VALUES($1, $2, $3) RETURNING id, created_at",
		user.Name, user.Email, user.PassHash).Scan(&saved.Id, &saved.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Email already in use", StatusCode: http.StatusConflict}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func (s *Storage) userByEmail(q Querier, email string) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1", email).
		Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) userById(q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1", id).
		Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) users(q Querier, skip, limit int) ([]domain.User, error) {
	rows, err := q.Query("SELECT id, name, email, password_hash, created_at FROM users ORDER BY id OFFSET $1 LIMIT $2", skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Storage) updateUser(q Querier, user domain.User) error {
	result, err := q.Exec("UPDATE users SET name = $1, email = $2, password_hash = $3 WHERE id = $4",
		user.Name, user.Email, user.PassHash, user.Id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &internal_errors.ErrorWithStatusCode{Message: "Email already in use", StatusCode: http.StatusConflict}
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for user update: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) deleteUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for user deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
