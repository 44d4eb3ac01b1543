package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/docs"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/ratelimiter"
	"github.com/eleeje97/kitchen-catalog/internal/service"
	"github.com/eleeje97/kitchen-catalog/internal/store/mongo"
	"github.com/eleeje97/kitchen-catalog/internal/worker"
)

type application struct {
	config           config
	logger           *zap.SugaredLogger
	rateLimiter      ratelimiter.Limiter
	storage          *mongo.Storage
	broker           queue.Broker
	productService   *service.ProductService
	menuService      *service.MenuService
	menuGroupService *service.MenuGroupService
	importService    *service.ImportService
	auditWorker      *worker.PriceAuditWorker
	importWorker     *worker.ProductImportWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	moderation  moderationConfig
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type moderationConfig struct {
	BaseURL string
	Timeout time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/products", app.createProductHandler)
		r.Get("/products", app.listProductsHandler)
		r.Get("/products/{product_id}", app.getProductHandler)
		r.Put("/products/{product_id}/price", app.changeProductPriceHandler)
		r.Get("/products/{product_id}/audit", app.getProductAuditHandler)

		r.Post("/menus", app.createMenuHandler)
		r.Get("/menus", app.listMenusHandler)
		r.Get("/menus/{menu_id}", app.getMenuHandler)
		r.Put("/menus/{menu_id}/price", app.changeMenuPriceHandler)
		r.Put("/menus/{menu_id}/display", app.displayMenuHandler)
		r.Put("/menus/{menu_id}/hide", app.hideMenuHandler)

		r.Post("/menu-groups", app.createMenuGroupHandler)
		r.Get("/menu-groups", app.listMenuGroupsHandler)

		r.Post("/imports", app.createImportTaskHandler)
		r.Get("/imports/{task_id}", app.getImportTaskHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Kitchen Catalog"
	docs.SwaggerInfo.Description = "Point-of-sale catalog API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start price audit worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start product import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}
		if app.importWorker != nil {
			app.importWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

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
