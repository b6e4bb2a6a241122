package setup

import (
	"github.com/orcahelper/orcahelper/internal/config"
	"github.com/orcahelper/orcahelper/internal/handler"
	"github.com/orcahelper/orcahelper/internal/middleware"
	"github.com/orcahelper/orcahelper/internal/middleware/metrics"
	"github.com/orcahelper/orcahelper/internal/service"
	"github.com/orcahelper/orcahelper/internal/storage/pg"
	"github.com/orcahelper/orcahelper/internal/utils/jwt"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage  *pg.Storage
	Handler  *handler.Handler
	Identity *middleware.Identity
	Metrics  *metrics.Metrics
	Jwt      jwt.JwtService
	Config   *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	users := service.NewUsers(storage, cfg)
	products := service.NewProducts(storage)

	identity := middleware.NewIdentity(jwtService, auth)
	h := handler.New(auth, users, products, storage)

	return &Dependencies{
		Storage:  storage,
		Handler:  h,
		Identity: identity,
		Metrics:  metrics.New(),
		Jwt:      jwtService,
		Config:   cfg,
	}, nil
}
