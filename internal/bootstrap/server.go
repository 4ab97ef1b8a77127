package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/api"
	"github.com/skyway-app/skyway/config"
)

type Handlers struct {
	Tables    *api.TablesHandler
	Catalog   *api.CatalogHandler
	Auth      *api.AuthHandler
	Customers *api.CustomerHandler
}

// NewRouter wires every handler onto one gin engine. The table registry
// behind Handlers.Tables is resolved before this point; routing itself
// holds no entity knowledge.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	h.Tables.Register(router.Group("/tables"))
	h.Catalog.Register(router.Group("/"))
	h.Auth.Register(router.Group("/"))
	h.Customers.Register(router.Group("/customers"))
	return router
}

// Run serves HTTP and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, router *gin.Engine) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
