package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/api"
	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagTrustProxy  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arena SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game under its SSH user name.
Scores are stored per-server (all users share the same leaderboard).
Collision sounds ring the player's terminal bell.

With --http, a read-only leaderboard API and Prometheus metrics are
served as well:
  GET /healthz
  GET /api/scores?limit=N
  GET /api/scores/best
  GET /api/stats
  GET /metrics

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arena serve                             # Listen on :23234 with auto-generated key
  arena serve --ssh :2222                 # Listen on port 2222
  arena serve --http :8080                # Also serve the leaderboard API
  arena serve --http :8080 --trust-proxy  # API behind nginx or another proxy
  arena serve --host-key ./my_host_key    # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port, empty disables)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagTrustProxy, "trust-proxy", false, "Rate limit by X-Forwarded-For/X-Real-IP (only behind a reverse proxy)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "arena")
	if err := serve(logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serve(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fail fast on a broken config instead of on the first connection
	game, err := registry.Create(arena.GameID)
	if err != nil {
		return err
	}
	holdWindow := game.(*arena.Game).Config().Input.HoldDuration()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.Store = store
	sshCfg.FrameRate = flagFPS
	sshCfg.HoldWindow = holdWindow
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.Logger = logger.WithPrefix("arena-ssh")

	sshSrv, err := tui.NewSSHServer(sshCfg)
	if err != nil {
		return err
	}

	httpSrv, limiter, err := newHTTPServer(store)
	if err != nil {
		return err
	}

	sshDone := make(chan error, 1)
	go func() {
		sshDone <- sshSrv.ListenAndServe(ctx)
	}()

	httpDone := make(chan error, 1)
	if httpSrv != nil {
		defer limiter.Stop()
		logger.Info("starting HTTP server", "address", flagHTTPAddr)
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				httpDone <- err
			}
			close(httpDone)
		}()
	}

	fmt.Fprintf(os.Stderr, "Connect with: ssh localhost -p %s\n", portOf(flagSSHAddr))

	var runErr error
	select {
	case <-ctx.Done():
		runErr = <-sshDone
	case runErr = <-sshDone:
		stop()
	case runErr = <-httpDone:
		stop()
		if err := <-sshDone; runErr == nil {
			runErr = err
		}
	}

	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown", "error", err)
		}
		allowed, rejected := limiter.Stats()
		logger.Info("HTTP requests", "allowed", allowed, "rejected", rejected)
	}

	logger.Info("stopped")
	return runErr
}

// newHTTPServer builds the leaderboard server, or returns nil when --http is
// empty. The caller stops the returned limiter.
func newHTTPServer(store *storage.Store) (*http.Server, *api.IPRateLimiter, error) {
	if flagHTTPAddr == "" {
		return nil, nil, nil
	}

	limiter := api.NewIPRateLimiter(api.DefaultRateLimitConfig)
	cfg := api.RouterConfig{
		GameID:      arena.GameID,
		RateLimiter: limiter,
		TrustProxy:  flagTrustProxy,
	}
	// A nil *Store must not become a non-nil interface
	if store != nil {
		cfg.Scores = store
	}

	router, err := api.NewRouter(cfg)
	if err != nil {
		limiter.Stop()
		return nil, nil, err
	}
	return &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}, limiter, nil
}

// portOf returns the port of a host:port address for the connect hint.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
