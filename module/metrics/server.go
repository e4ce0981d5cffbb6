package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const metricsEndpoint = "/metrics"

// Server is the http server that will be serving the /metrics request for prometheus
type Server struct {
	server *http.Server
	log    zerolog.Logger
	addr   string
}

// NewServer creates a new server that will start on the specified port,
// and responds to only the `/metrics` endpoint with the metrics gathered by gatherer.
func NewServer(log zerolog.Logger, port uint, gatherer prometheus.Gatherer) *Server {
	addr := ":" + strconv.Itoa(int(port))

	mux := http.NewServeMux()
	mux.Handle(metricsEndpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Server{
		server: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		log:    log.With().Str("component", "metrics_server").Logger(),
	}
}

// Start binds the listener and serves in the background. It returns an error
// if the port cannot be bound.
func (m *Server) Start() error {
	listener, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		return fmt.Errorf("could not start metrics server on %s: %w", m.server.Addr, err)
	}
	m.addr = listener.Addr().String()
	m.log.Info().Str("address", m.addr).Str("endpoint", metricsEndpoint).Msg("metrics server started")

	go func() {
		if err := m.server.Serve(listener); err != nil {
			// http.ErrServerClosed is returned when Close or Shutdown is called
			// we don't consider this an error, so print this with debug level instead
			if errors.Is(err, http.ErrServerClosed) {
				m.log.Debug().Err(err).Msg("metrics server shutdown")
			} else {
				m.log.Err(err).Msg("error shutting down metrics server")
			}
		}
	}()
	return nil
}

// Ready starts the server and returns a channel that will close once the
// listener is bound. A failure to bind is logged and leaves Addr empty,
// callers that need the endpoint use Start instead.
func (m *Server) Ready() <-chan struct{} {
	ready := make(chan struct{})
	if err := m.Start(); err != nil {
		m.log.Err(err).Msg("could not start metrics server")
	}
	close(ready)
	return ready
}

// Addr returns the address the server listens on, once Ready has closed.
func (m *Server) Addr() string {
	return m.addr
}

// Done returns a channel that will close when shutdown is complete.
func (m *Server) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = m.server.Shutdown(ctx)
		cancel()
		close(done)
	}()
	return done
}
