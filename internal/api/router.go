// Package api serves mazeflood games over HTTP with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazeflood/internal/metrics"
)

// Controller registers a group of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *zap.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	Controllers []Controller
	Logger      *zap.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         log,
	}
}

// Handler builds the gin engine: controllers under <baseURL>/v1 and the
// Prometheus endpoint at /metrics.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), r.logRequests())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(r.baseURL)
	{
		public := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(public)
			}
		}
	}
	return router
}

// Run serves until ctx is done, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		r.log.Info("http server listening", zap.String("addr", r.addr), zap.String("base_url", r.baseURL))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs each request and records its duration and status.
// Requests matching no route are labelled "unmatched".
func (r *Router) logRequests() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start)

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := ctx.Writer.Status()

		r.log.Debug("http request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", ctx.ClientIP()),
		)
		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration.Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(status)).Inc()
	}
}
