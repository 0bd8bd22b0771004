package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voltmart/internal/cart"
	"voltmart/internal/catalog"
	"voltmart/internal/ratelimiter"
	"voltmart/internal/wishlist"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config      config
	catalog     *catalog.Catalog
	carts       *cart.Manager
	saved       *wishlist.Store
	logger      *zap.SugaredLogger
	rateLimiter *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	frontendURL string
	wishlistDB  string
	negotiation negotiationConfig
	rateLimiter ratelimiter.Config
}

type negotiationConfig struct {
	// processingDelay simulates the dialog's "thinking" phase before a
	// verdict is returned.
	processingDelay time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", sessionHeader},
		ExposedHeaders:   []string{"Link", sessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", app.listProductsHandler)
			r.Get("/search", app.searchProductsHandler)
			r.Get("/{productID}", app.getProductHandler)
		})

		// Everything below is scoped to a cart session.
		r.Group(func(r chi.Router) {
			r.Use(app.CartSessionMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.clearCartHandler)
				r.Post("/negotiate", app.negotiateCartHandler)

				r.Route("/items", func(r chi.Router) {
					r.Post("/", app.addCartItemHandler)
					r.Delete("/", app.removeCartItemHandler)
					r.Patch("/quantity", app.changeQuantityHandler)
					r.Post("/protection", app.toggleProtectionHandler)
					r.Post("/negotiate", app.negotiateItemHandler)
				})
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", app.getWishlistHandler)
				r.Post("/", app.addWishHandler)
				r.Delete("/{productID}", app.removeWishHandler)
			})

			r.Route("/compare", func(r chi.Router) {
				r.Get("/", app.getComparisonHandler)
				r.Post("/", app.addCompareHandler)
				r.Delete("/{productID}", app.removeCompareHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
