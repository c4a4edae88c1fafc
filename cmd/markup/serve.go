package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/cache"
	"github.com/vango-dev/markup/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		host       string
		port       int
		liveReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Long: `Serve the demo site over HTTP.

Rendered pages are cached according to the [cache] section of the
config. With --live-reload, sending SIGHUP to the process reloads
every open browser tab.

Examples:
  markup serve
  markup serve --port 3000 --live-reload
  MARKUP_REDIS_URL=redis://localhost:6379/0 markup serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if host != "" {
				a.cfg.Server.Host = host
			}
			if port != 0 {
				a.cfg.Server.Port = port
			}
			if liveReload {
				a.cfg.Server.LiveReload = true
			}
			return a.serve(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "host to bind (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config)")
	cmd.Flags().BoolVar(&liveReload, "live-reload", false, "inject the live reload script")
	return cmd
}

// openCache opens the page cache named by cfg.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheRedis:
		c, err := cache.OpenRedis(ctx, cfg.Cache.RedisURL, cfg.Cache.Prefix)
		if err != nil {
			return nil, errors.New("E301").Wrap(err).
				WithSuggestion("Check cache.redis_url or MARKUP_REDIS_URL, or set cache.backend to \"memory\".")
		}
		return c, nil
	default:
		return cache.NewNullCache(), nil
	}
}

// handler assembles the router for the configured site.
func (a *app) handler(pageCache cache.Cache, lr *server.LiveReload) http.Handler {
	opts := []server.Option{
		server.WithCache(pageCache, a.cfg.CacheTTL()),
		server.WithLogger(a.log),
	}
	if a.cfg.MetricsEnabled() {
		opts = append(opts, server.WithMetrics(a.cfg.Server.MetricsPath, promhttp.Handler()))
	} else {
		opts = append(opts, server.WithMetrics("", nil))
	}
	if lr != nil {
		opts = append(opts, server.WithLiveReload(lr))
	}
	return server.NewRouter(a.newRenderer(), a.site().Routes(), opts...)
}

func (a *app) serve(ctx context.Context, cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pageCache, err := openCache(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer pageCache.Close()

	var lr *server.LiveReload
	if a.cfg.Server.LiveReload {
		lr = server.NewLiveReload()
		defer lr.Close()
	}

	srv := &http.Server{
		Addr:              a.cfg.Address(),
		Handler:           a.handler(pageCache, lr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go a.sweep(ctx, pageCache)
	go a.reloadOnHangup(ctx, pageCache, lr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, banner())
	fmt.Fprintln(w)
	field(w, "Local:", styleLink.Render(a.cfg.URL()))
	field(w, "Styles:", a.stylePolicy().String())
	field(w, "Cache:", a.cfg.Cache.Backend)
	if a.cfg.MetricsEnabled() {
		field(w, "Metrics:", a.cfg.URL()+a.cfg.Server.MetricsPath)
	}
	fmt.Fprintln(w)

	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New("E401").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E401").Wrap(err)
	}
	return nil
}

// sweep drops expired entries from an in-memory cache once per TTL.
func (a *app) sweep(ctx context.Context, c cache.Cache) {
	mem, ok := c.(*cache.MemoryCache)
	ttl := a.cfg.CacheTTL()
	if !ok || ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := mem.Sweep(); n > 0 {
				a.log.Debug("swept page cache", slog.Int("expired", n))
			}
		}
	}
}

// reloadOnHangup clears an in-memory cache and reloads browsers on SIGHUP.
func (a *app) reloadOnHangup(ctx context.Context, c cache.Cache, lr *server.LiveReload) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if mem, ok := c.(*cache.MemoryCache); ok {
				_ = mem.Close()
			}
			if lr != nil {
				lr.NotifyReload("/")
				a.log.Info("reloaded browsers", slog.Int("clients", lr.ClientCount()))
			}
		}
	}
}
