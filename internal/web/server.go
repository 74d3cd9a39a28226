// Package web serves the dashboard to browsers as server-rendered HTML with
// inline SVG charts. The sidebar state travels in the query string.
package web

import (
	"bytes"
	"context"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/dashboard"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

// Server serves the dashboard page and its JSON API.
type Server struct {
	addr      string
	catalog   model.CatalogReader
	skin      skin.Skin
	logger    *zap.Logger
	tmpl      *template.Template
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a dashboard server. An empty addr uses the default listen
// address; a nil logger discards logs.
func NewServer(addr string, catalog model.CatalogReader, sk skin.Skin, logger *zap.Logger) *Server {
	if addr == "" {
		addr = model.DefaultListenAddr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if sk.Name == "" {
		sk = skin.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		catalog:   catalog,
		skin:      sk,
		logger:    logger,
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()
	s.logger.Info("http server listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/", s.handleIndex)
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/dashboard", s.handleDashboard)
	return r
}

// requestLogger logs every request once it completes.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) compose(c *gin.Context) dashboard.Page {
	return dashboard.Compose(s.catalog, dashboard.ParseViewState(c.Query("sidebar")))
}

func (s *Server) handleIndex(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, newPageView(s.compose(c), s.skin)); err != nil {
		s.logger.Error("render dashboard", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.compose(c))
}
