// Package server is the HTTP front door of `genhub serve`: the websocket RPC
// endpoint the UI connects to, Prometheus metrics, and a liveness probe.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/glorpus-work/genhub/pkg/orchestrator"
	"github.com/glorpus-work/genhub/pkg/rpc"
	"github.com/gorilla/websocket"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the router and its dependencies.
type Server struct {
	router   *gin.Engine
	explorer *orchestrator.Explorer
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
}

// New creates the server. m may be nil, which disables /metrics.
func New(explorer *orchestrator.Explorer, m *metrics.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware(m))

	s := &Server{
		router:   router,
		explorer: explorer,
		metrics:  m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Editor webviews have no stable origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	router.GET("/healthz", s.health)
	router.GET("/rpc", s.handleRPC)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting genhub server", logger.Fields{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down genhub server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": len(s.explorer.Sessions()),
		"busy":     s.explorer.Busy().Names(),
	})
}

// handleRPC upgrades the request and serves one UI session until it disconnects.
func (s *Server) handleRPC(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", logger.Fields{"error": err.Error()})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	conn := rpc.NewConn(ws, s.metrics)
	session := s.explorer.NewSession(ctx, conn)
	defer session.Close()

	Bind(conn, session)
	logger.Debug("UI session attached", logger.Fields{"session": session.ID, "remote": c.Request.RemoteAddr})

	if err := conn.Serve(ctx); err != nil {
		logger.Debug("UI session ended", logger.Fields{"session": session.ID, "error": err.Error()})
		return
	}
	logger.Debug("UI session detached", logger.Fields{"session": session.ID})
}
