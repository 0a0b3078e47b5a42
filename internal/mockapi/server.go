package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rshade/finprod/internal/product"
)

// Server response messages.
const (
	MsgAdded   = "Product added successfully"
	MsgUpdated = "Product updated successfully"
	MsgRemoved = "Product removed successfully"
)

const (
	basePath          = "/bp/products"
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server exposes a Store over HTTP.
type Server struct {
	store  *Store
	logger zerolog.Logger
	engine *gin.Engine
	debug  bool
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithDebug keeps gin in debug mode.
func WithDebug(debug bool) Option {
	return func(s *Server) { s.debug = debug }
}

// NewServer returns a Server over store with its routes registered.
func NewServer(store *Store, opts ...Option) *Server {
	s := &Server{store: store, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	if !s.debug && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	g := s.engine.Group(basePath)
	g.GET("", s.listProducts)
	g.POST("", s.createProduct)
	g.GET("/verification/:id", s.verifyProduct)
	g.GET("/:id", s.getProduct)
	g.PUT("/:id", s.updateProduct)
	g.DELETE("/:id", s.deleteProduct)
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info().
		Str("component", "mockapi").
		Str("addr", ln.Addr().String()).
		Int("products", s.store.Len()).
		Msg("serving product API")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving product API: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down product API: %w", err)
	}
	s.logger.Info().Str("component", "mockapi").Msg("product API stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("component", "mockapi").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetHeader("X-Request-Id")).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.List()})
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) verifyProduct(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Exists(c.Param("id")))
}

func (s *Server) createProduct(c *gin.Context) {
	p, ok := bindProduct(c)
	if !ok {
		return
	}
	if err := s.store.Add(p); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgAdded, "data": p})
}

func (s *Server) updateProduct(c *gin.Context) {
	p, ok := bindProduct(c)
	if !ok {
		return
	}
	if id := c.Param("id"); p.ID != id {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody("BadRequest",
			fmt.Sprintf("body id %q does not match path id %q", p.ID, id)))
		return
	}
	if err := s.store.Replace(p); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgUpdated, "data": p})
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.store.Remove(c.Param("id")); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": MsgRemoved})
}

// bindProduct decodes and validates the request body, replying 400 on failure.
func bindProduct(c *gin.Context) (product.Product, bool) {
	var p product.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody("BadRequest", "invalid product body: "+err.Error()))
		return product.Product{}, false
	}
	if err := product.Validate(p); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody("BadRequest", err.Error()))
		return product.Product{}, false
	}
	return p, true
}

func abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody("NotFound", err.Error()))
	case errors.Is(err, ErrDuplicateID):
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody("BadRequest", err.Error()))
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("InternalServerError", err.Error()))
	}
}

func errorBody(name, message string) gin.H {
	return gin.H{"name": name, "message": message}
}
