package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth/credentials"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth/handler"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/config"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/middleware"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/routes"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/storage"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	persisted := storage.NewRedisStore(infra.Redis.Client)
	sessions := session.NewStore(persisted)

	authorizer := routes.NewAuthorizer(routes.DefaultTable())
	navigator := middleware.NewNavigator(authorizer, sessions)

	userStore := credentials.NewDBStore(infra.DB)
	credentialService := credentials.NewService(userStore)
	tokens := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)

	authHandler := handler.NewHandler(
		credentialService,
		tokens,
		sessions,
		navigator,
	)

	// Hydrate before the router exists so no navigation can ever see a
	// not-yet-loaded session.
	sessions.Bootstrap(ctx)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Navigation
	// ----------------------------

	for _, route := range routes.DefaultTable() {
		router.GET(route.Path, navigator.Navigate)
	}

	// Undeclared paths still go through the authorizer; it resolves
	// them instead of surfacing a 404.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		navigator.Navigate(c)
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
