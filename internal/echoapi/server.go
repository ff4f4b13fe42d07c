// Package echoapi provides a local HTTP echo endpoint for dry runs.
//
// The submitter's default endpoint is a public echo service; this server is
// the offline equivalent, letting operators exercise a full batch run without
// touching the network edge. It answers GET /get by reflecting the received
// query parameters as JSON with HTTP 200, the submitter's success indicator,
// so a dry run classifies every well-formed row as Success. A /health route
// reports server status for scripting.
package echoapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/halex5000/pinot-noir-code/internal/logging"
	"github.com/halex5000/pinot-noir-code/internal/version"
)

// EchoResponse reflects a received request back to the caller.
type EchoResponse struct {
	Args map[string]string `json:"args"`
	URL  string            `json:"url"`
}

// HealthResponse reports server status for scripted checks.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// Server is the local echo endpoint.
type Server struct {
	httpServer *http.Server
	listenAddr string
	log        *logging.Logger
	startTime  time.Time
}

// NewServer creates an echo server bound to listenAddr.
func NewServer(listenAddr string, logger *logging.Logger) *Server {
	// Release mode keeps gin quiet; our middleware does the logging
	gin.SetMode(gin.ReleaseMode)

	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		listenAddr: listenAddr,
		log:        logger,
		startTime:  time.Now(),
	}
}

// Router builds the gin handler. Exposed so tests can drive it with httptest
// without binding a port.
func (s *Server) Router() *gin.Engine {
	gin.DefaultWriter = s.log.NewLevelWriter("INFO", "gin")
	gin.DefaultErrorWriter = s.log.NewLevelWriter("ERROR", "gin")

	router := gin.New()
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	router.GET("/get", s.handleEcho)
	router.GET("/health", s.handleHealth)

	return router
}

// Start binds the listener and serves in the background. Binding is tested
// eagerly so address conflicts surface immediately instead of inside the
// serve goroutine.
func (s *Server) Start() error {
	s.log.Info("Starting echo endpoint on %s", s.listenAddr)

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.Router(),
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Echo endpoint failed: %v", err)
		}
	}()

	s.log.Success("Echo endpoint started, point --api-url at http://%s/get", s.listenAddr)
	return nil
}

// Shutdown gracefully shuts down the echo endpoint.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down echo endpoint...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// loggingMiddleware provides request logging through the run logger
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		s.log.Info("%s - \"%s %s\" %d %s",
			param.ClientIP,
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency,
		)
		return ""
	})
}

// handleEcho reflects the received query parameters back as JSON
func (s *Server) handleEcho(c *gin.Context) {
	args := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			args[key] = values[0]
		}
	}

	c.JSON(http.StatusOK, EchoResponse{
		Args: args,
		URL:  c.Request.URL.String(),
	})
}

// handleHealth returns the health status of the echo endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version.PinotctlVersion,
		Uptime:    time.Since(s.startTime).String(),
	})
}
