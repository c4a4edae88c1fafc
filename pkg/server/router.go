package server

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/markup/pkg/render"
)

// WithLiveReload mounts lr at ReloadPath and injects its script into every
// page.
func WithLiveReload(lr *LiveReload) Option {
	return func(o *options) { o.reload = lr }
}

// WithMetrics serves h at path instead of the default Prometheus handler.
// A nil handler disables the endpoint.
func WithMetrics(path string, h http.Handler) Option {
	return func(o *options) {
		o.metricsURL = path
		o.metrics = h
		if h == nil {
			o.metricsURL = ""
		}
	}
}

// NewRouter mounts every page at its chi route pattern. Patterns may use
// chi URL parameters, which PageFuncs read with chi.URLParam.
func NewRouter(renderer *render.Renderer, pages map[string]PageFunc, opts ...Option) chi.Router {
	o := defaultOptions()
	o.metrics = promhttp.Handler()
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if o.metricsURL != "" && o.metrics != nil {
		r.Handle(o.metricsURL, o.metrics)
	}
	if o.reload != nil {
		r.Handle(ReloadPath, o.reload)
	}

	r.Group(func(r chi.Router) {
		if o.reload != nil {
			r.Use(o.reload.Middleware)
		}
		for _, pattern := range sortedPatterns(pages) {
			h := newPageHandler(renderer, pages[pattern], o)
			r.Get(pattern, h.ServeHTTP)
			r.Head(pattern, h.ServeHTTP)
		}
	})

	return r
}

func sortedPatterns(pages map[string]PageFunc) []string {
	patterns := make([]string, 0, len(pages))
	for p := range pages {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	return patterns
}
