// Package server serves rendered documents over HTTP.
//
// Handler turns a PageFunc into an http.Handler that renders one
// html.Document per request, optionally caching the bytes. NewRouter mounts
// a set of pages on a chi router together with the Prometheus endpoint and,
// in development, the live reload websocket.
//
//	r := server.NewRouter(renderer, pages,
//	    server.WithCache(cache.NewMemoryCache(), time.Minute),
//	    server.WithLiveReload(server.NewLiveReload()),
//	)
//	http.ListenAndServe(":8080", r)
package server
