package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vango-dev/markup/pkg/cache"
	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/render"
)

// CacheHeader reports whether a response came from the page cache.
const CacheHeader = "X-Markup-Cache"

// PageFunc builds the document for a request.
type PageFunc func(r *http.Request) (html.Document, error)

// Option configures Handler and NewRouter.
type Option func(*options)

type options struct {
	cache      cache.Cache
	ttl        time.Duration
	logger     *slog.Logger
	reload     *LiveReload
	metrics    http.Handler
	metricsURL string
}

func defaultOptions() options {
	return options{
		cache:      cache.NewNullCache(),
		logger:     slog.Default(),
		metricsURL: "/metrics",
	}
}

// WithCache stores rendered pages in c for ttl. A ttl of zero keeps them
// until the cache evicts them.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
		o.ttl = ttl
	}
}

// WithLogger sets the logger used for render and cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type pageHandler struct {
	renderer *render.Renderer
	page     PageFunc
	opts     options
}

// Handler renders page for every GET or HEAD request.
func Handler(renderer *render.Renderer, page PageFunc, opts ...Option) http.Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newPageHandler(renderer, page, o)
}

func newPageHandler(renderer *render.Renderer, page PageFunc, o options) *pageHandler {
	return &pageHandler{renderer: renderer, page: page, opts: o}
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	key := cache.PageKey(r.URL.Path, r.URL.Query())
	log := h.opts.logger.With(slog.String("path", r.URL.Path))

	data, ok, err := h.opts.cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "page cache read failed", slog.Any("error", err))
	}
	if ok {
		w.Header().Set(CacheHeader, "hit")
		writeHTML(w, r, data)
		return
	}

	doc, err := h.page(r)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.ErrorContext(ctx, "page failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderDocument(render.WithName(ctx, r.URL.Path), &buf, doc); err != nil {
		log.ErrorContext(ctx, "render failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.opts.cache.Set(ctx, key, buf.Bytes(), h.opts.ttl); err != nil {
		log.WarnContext(ctx, "page cache write failed", slog.Any("error", err))
	}
	w.Header().Set(CacheHeader, "miss")
	writeHTML(w, r, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, r *http.Request, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
