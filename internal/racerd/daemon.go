// Package racerd provides the daemon scaffolding for the racer agent
// HTTP service.
package racerd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/raceday-ai/racerd/internal/agent"
	"github.com/raceday-ai/racerd/internal/config"
	"github.com/raceday-ai/racerd/internal/contextstore"
	"github.com/raceday-ai/racerd/internal/templates"
)

const shutdownTimeout = 5 * time.Second

// Options configure the daemon runtime.
type Options struct {
	Hostname string
	Port     int
	Version  string
}

// Daemon is the long-running process serving the racer agent API.
type Daemon struct {
	cfg    *config.Config
	logger zerolog.Logger
	opts   Options

	agent  *agent.Service
	server *http.Server
}

// New constructs a daemon with the provided configuration. Template
// definitions are loaded and validated here, so a broken definition
// fails startup instead of the first request.
func New(cfg *config.Config, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if opts.Hostname == "" {
		opts.Hostname = config.DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}

	registry, err := templates.LoadRegistry(cfg.Templates.Dir)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	logger.Info().Int("templates", registry.Len()).Msg("template registry loaded")

	svc := agent.NewService(registry, contextstore.New())
	router := NewRouter(NewHandler(svc, registry), logger, cfg.Server.CORSOrigins)

	return &Daemon{
		cfg:    cfg,
		logger: logger,
		opts:   opts,
		agent:  svc,
		server: &http.Server{Handler: router},
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := d.bindAddr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}

	d.logger.Info().
		Str("bind", bindAddr).
		Str("version", d.opts.Version).
		Msg("racerd HTTP server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := d.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info().Msg("racerd shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := d.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	d.logger.Info().Msg("racerd shutdown complete")
	return nil
}

func (d *Daemon) bindAddr() string {
	return net.JoinHostPort(d.opts.Hostname, strconv.Itoa(d.opts.Port))
}

// Agent returns the underlying agent service. Useful for testing.
func (d *Daemon) Agent() *agent.Service {
	return d.agent
}
