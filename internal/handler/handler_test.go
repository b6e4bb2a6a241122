package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/orcahelper/orcahelper/internal/domain"
	internal_errors "github.com/orcahelper/orcahelper/internal/errors"
	"github.com/orcahelper/orcahelper/internal/middleware"
	"github.com/orcahelper/orcahelper/internal/service"
	"github.com/orcahelper/orcahelper/internal/utils/jwt"
)

// --- Mocks ---

type MockAuthService struct {
	LoginFunc   func(creds domain.Credentials) (string, error)
	ResolveFunc func(tokenString string) (domain.User, error)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(creds)
	}
	return "", nil
}

func (m *MockAuthService) Resolve(tokenString string) (domain.User, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(tokenString)
	}
	return domain.User{Id: 1, Name: "A", Email: "a@x.com"}, nil
}

type MockUserService struct {
	CreateFunc func(name, email, plainPassword string) (domain.User, error)
	ByIdFunc   func(id domain.UserId) (domain.User, error)
	ListFunc   func(skip, limit int) ([]domain.User, error)
	UpdateFunc func(id domain.UserId, name, email, plainPassword string) (domain.User, error)
	DeleteFunc func(id domain.UserId) error
}

func (m *MockUserService) Create(name, email, plainPassword string) (domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(name, email, plainPassword)
	}
	return domain.User{Id: 1, Name: name, Email: email, CreatedAt: time.Now()}, nil
}

func (m *MockUserService) ById(id domain.UserId) (domain.User, error) {
	if m.ByIdFunc != nil {
		return m.ByIdFunc(id)
	}
	return domain.User{Id: id, Name: "A", Email: "a@x.com"}, nil
}

func (m *MockUserService) List(skip, limit int) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(skip, limit)
	}
	return []domain.User{}, nil
}

func (m *MockUserService) Update(id domain.UserId, name, email, plainPassword string) (domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, name, email, plainPassword)
	}
	return domain.User{Id: id, Name: name, Email: email}, nil
}

func (m *MockUserService) Delete(id domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type MockProductService struct {
	CreateFunc func(owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error)
	ByIdFunc   func(id domain.ProductId, owner domain.UserId) (domain.Product, error)
	ListFunc   func(owner domain.UserId, skip, limit int) ([]domain.Product, error)
	UpdateFunc func(id domain.ProductId, owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error)
	DeleteFunc func(id domain.ProductId, owner domain.UserId) error
}

func (m *MockProductService) Create(owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(owner, name, expiresAt, price)
	}
	return domain.Product{Id: 1, Name: name, UserId: owner, ExpiresAt: expiresAt, Price: price}, nil
}

func (m *MockProductService) ById(id domain.ProductId, owner domain.UserId) (domain.Product, error) {
	if m.ByIdFunc != nil {
		return m.ByIdFunc(id, owner)
	}
	return domain.Product{Id: id, UserId: owner, Name: "milk", Price: 4.50}, nil
}

func (m *MockProductService) List(owner domain.UserId, skip, limit int) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(owner, skip, limit)
	}
	return []domain.Product{}, nil
}

func (m *MockProductService) Update(id domain.ProductId, owner domain.UserId, name string, expiresAt *time.Time, price float64) (domain.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, owner, name, expiresAt, price)
	}
	return domain.Product{Id: id, UserId: owner, Name: name, ExpiresAt: expiresAt, Price: price}, nil
}

func (m *MockProductService) Delete(id domain.ProductId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id, owner)
	}
	return nil
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

var (
	_ service.AuthService    = (*MockAuthService)(nil)
	_ service.UserService    = (*MockUserService)(nil)
	_ service.ProductService = (*MockProductService)(nil)
)

// --- Test fixtures ---

var invalidCredsErr = &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusBadRequest}

func newTestHandler() (*Handler, *MockAuthService, *MockUserService, *MockProductService) {
	auth := &MockAuthService{}
	users := &MockUserService{}
	products := &MockProductService{}
	h := New(auth, users, products, &MockPinger{})
	return h, auth, users, products
}

// newTestRouter mounts the handler behind the same identity middleware
// the real router uses, backed by the given auth mock.
func newTestRouter(h *Handler, auth *MockAuthService) *chi.Mux {
	jwtService := jwt.New("test_secret", time.Hour)
	identity := middleware.NewIdentity(jwtService, auth)

	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/user", h.CreateUser)
	r.Get("/user", h.GetUsers)

	r.Group(func(r chi.Router) {
		r.Use(identity.RequireUser())
		r.Get("/user/me", h.GetMe)
		r.Put("/user/update/{user_id}", h.UpdateUser)
		r.Delete("/user/{user_id}", h.DeleteUser)
		r.Post("/product", h.CreateProduct)
		r.Get("/product", h.GetProducts)
		r.Get("/product/{product_id}", h.GetProduct)
		r.Put("/product/{product_id}", h.UpdateProduct)
		r.Delete("/product/{product_id}", h.DeleteProduct)
	})

	return r
}

func createRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func bearerRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	token, err := jwt.New("test_secret", time.Hour).NewToken("a@x.com")
	require.NoError(t, err)
	req := createRequest(t, method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
