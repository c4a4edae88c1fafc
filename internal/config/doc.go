// Package config loads the markup project configuration.
//
// Configuration lives in markup.toml or markup.json at the project root.
// Missing fields take defaults, and a few MARKUP_* environment variables
// override the file:
//
//	MARKUP_ADDR          server host:port
//	MARKUP_REDIS_URL     redis URL; selects the redis cache backend
//	MARKUP_STYLE_POLICY  none, class or grouped
//	MARKUP_LOG_LEVEL     debug, info, warn or error
//
// A minimal markup.toml:
//
//	name = "docs"
//
//	[server]
//	port = 8080
//	live_reload = true
//
//	[style]
//	policy = "grouped"
//
//	[cache]
//	backend = "memory"
//	ttl = "5m"
package config
