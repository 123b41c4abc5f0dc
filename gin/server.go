// Package gin serves the restaurant catalog and URL import over HTTP.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/reservo"
	"github.com/gin-gonic/gin"
)

// Default server timeouts.
const (
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// Server is the HTTP API for dashboards. Services must be set before Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine
	logger *slog.Logger

	// Addr is the bind address, e.g. ":8080".
	Addr string

	Importer          *reservo.Importer
	RestaurantService reservo.RestaurantService
}

// NewServer creates a Server with routes and middleware registered.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		router: gin.New(),
		logger: logger,
	}

	s.router.Use(recoveryMiddleware(logger))
	s.router.Use(loggerMiddleware(logger))

	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/import", s.handleImport)
	api.GET("/restaurants", s.handleListRestaurants)
	api.POST("/restaurants", s.handleCreateRestaurant)
	api.GET("/restaurants/:id", s.handleGetRestaurant)
	api.PUT("/restaurants/:id", s.handleUpdateRestaurant)
	api.DELETE("/restaurants/:id", s.handleDeleteRestaurant)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
	return s
}

// ServeHTTP dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open binds Addr and serves in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	s.logger.Info("listening", "addr", ln.Addr().String())
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped", "err", err)
		}
	}()
	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForCode maps an application error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case reservo.EINVALID, reservo.EMALFORMED:
		return http.StatusBadRequest
	case reservo.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case reservo.ENOTFOUND:
		return http.StatusNotFound
	case reservo.ECONFLICT:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": message}. Internal errors are
// attached to the context so the request log records the detail.
func writeError(c *gin.Context, err error) {
	code := reservo.ErrorCode(err)
	if code == reservo.EINTERNAL {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(statusForCode(code), gin.H{"error": reservo.ErrorMessage(err)})
}
