package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/style"
)

const (
	// TOMLFileName is looked up before JSONFileName.
	TOMLFileName = "markup.toml"
	JSONFileName = "markup.json"

	DefaultHost        = "localhost"
	DefaultPort        = 8080
	DefaultOutput      = "dist"
	DefaultCacheTTL    = "1m"
	DefaultMetricsPath = "/metrics"
	DefaultCachePrefix = "markup:"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the project configuration.
type Config struct {
	Name   string       `json:"name,omitempty" toml:"name,omitempty"`
	Server ServerConfig `json:"server" toml:"server"`
	Style  StyleConfig  `json:"style" toml:"style"`
	Cache  CacheConfig  `json:"cache" toml:"cache"`
	Export ExportConfig `json:"export" toml:"export"`
	Log    LogConfig    `json:"log" toml:"log"`

	configPath string
}

// ServerConfig configures `markup serve`.
type ServerConfig struct {
	Host string `json:"host,omitempty" toml:"host,omitempty"`
	Port int    `json:"port,omitempty" toml:"port,omitempty"`

	// LiveReload injects the reload script and serves the websocket.
	LiveReload bool `json:"liveReload,omitempty" toml:"live_reload,omitempty"`

	// MetricsPath is where Prometheus metrics are served. "-" disables them.
	MetricsPath string `json:"metricsPath,omitempty" toml:"metrics_path,omitempty"`
}

// StyleConfig selects how documents collect their styles.
type StyleConfig struct {
	// Policy is "none", "class" or "grouped".
	Policy string `json:"policy,omitempty" toml:"policy,omitempty"`

	// ReadableNames derives class names from the declaration.
	ReadableNames bool `json:"readableNames,omitempty" toml:"readable_names,omitempty"`
}

// CacheConfig configures the rendered page cache.
type CacheConfig struct {
	// Backend is "none", "memory" or "redis".
	Backend string `json:"backend,omitempty" toml:"backend,omitempty"`

	// TTL is a Go duration string. "0" keeps entries until evicted.
	TTL string `json:"ttl,omitempty" toml:"ttl,omitempty"`

	RedisURL string `json:"redisUrl,omitempty" toml:"redis_url,omitempty"`
	Prefix   string `json:"prefix,omitempty" toml:"prefix,omitempty"`
}

// ExportConfig configures `markup export`.
type ExportConfig struct {
	Dir string   `json:"dir,omitempty" toml:"dir,omitempty"`
	S3  S3Config `json:"s3" toml:"s3"`
}

// S3Config names the bucket export uploads to.
type S3Config struct {
	Bucket       string `json:"bucket,omitempty" toml:"bucket,omitempty"`
	Prefix       string `json:"prefix,omitempty" toml:"prefix,omitempty"`
	Region       string `json:"region,omitempty" toml:"region,omitempty"`
	Endpoint     string `json:"endpoint,omitempty" toml:"endpoint,omitempty"`
	PathStyle    bool   `json:"pathStyle,omitempty" toml:"path_style,omitempty"`
	CacheControl string `json:"cacheControl,omitempty" toml:"cache_control,omitempty"`
}

// LogConfig sets the CLI log level.
type LogConfig struct {
	Level string `json:"level,omitempty" toml:"level,omitempty"`
}

// New returns a configuration with every default applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads markup.toml or markup.json from dir. When neither exists the
// defaults are returned and Path is empty.
func Load(dir string) (*Config, error) {
	for _, name := range []string{TOMLFileName, JSONFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile reads the configuration at path. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E202").Wrap(err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := decodeTOML(path, data, cfg); err != nil {
			return nil, err
		}
	case ".json":
		if err := decodeJSON(path, data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("E203").WithDetail("Cannot read " + path + ": configuration files must end in .json or .toml.")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

func decodeTOML(path string, data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		e := errors.New("E202").Wrap(err)
		var perr toml.ParseError
		if stderrors.As(err, &perr) {
			e.WithLocation(path, perr.Position.Line, 0)
		}
		return e.WithSuggestion("Check that " + filepath.Base(path) + " is valid TOML.")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New("E201").
			WithDetail("Unknown keys in " + path + ": " + strings.Join(keys, ", ")).
			WithSuggestion("Remove the keys or check their spelling.")
	}
	return nil
}

func decodeJSON(path string, data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		e := errors.New("E202").Wrap(err)
		var serr *json.SyntaxError
		if stderrors.As(err, &serr) {
			line, col := lineCol(data, serr.Offset)
			e.WithLocation(path, line, col)
		}
		return e.WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON.")
	}
	return nil
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New("E202").Wrap(err)
		}
	case ".json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("E202").Wrap(err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return errors.New("E203")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.New("E202").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the configuration file, or "."
// when none was loaded.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Style.Policy == "" {
		c.Style.Policy = style.Class.String()
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheNone
		if c.Cache.RedisURL != "" {
			c.Cache.Backend = CacheRedis
		}
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = DefaultCachePrefix
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ApplyEnv overrides fields from MARKUP_* variables using lookup, which is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MARKUP_ADDR"); ok && v != "" {
		host, port, err := net.SplitHostPort(v)
		if err != nil {
			return errors.New("E201").Wrap(err).WithDetail("MARKUP_ADDR must be host:port.")
		}
		n, err := strconv.Atoi(port)
		if err != nil {
			return errors.New("E201").Wrap(err).WithDetail("MARKUP_ADDR has a non-numeric port.")
		}
		c.Server.Host, c.Server.Port = host, n
	}
	if v, ok := lookup("MARKUP_REDIS_URL"); ok && v != "" {
		c.Cache.RedisURL = v
		c.Cache.Backend = CacheRedis
	}
	if v, ok := lookup("MARKUP_STYLE_POLICY"); ok && v != "" {
		c.Style.Policy = v
	}
	if v, ok := lookup("MARKUP_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E201").WithDetail("server.port must be between 0 and 65535.")
	}
	if _, err := style.ParsePolicy(c.Style.Policy); err != nil {
		return errors.New("E201").Wrap(err).
			WithSuggestion(`Use "none", "class" or "grouped".`)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return errors.New("E201").WithDetail("cache.backend is redis but cache.redis_url is empty.")
		}
	default:
		return errors.New("E201").
			WithDetail("Unknown cache backend " + strconv.Quote(c.Cache.Backend) + ".").
			WithSuggestion(`Use "none", "memory" or "redis".`)
	}
	if ttl, err := time.ParseDuration(c.Cache.TTL); err != nil || ttl < 0 {
		return errors.New("E201").WithDetail("cache.ttl must be a non-negative duration such as \"30s\".")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E201").WithDetail("Unknown log level " + strconv.Quote(c.Log.Level) + ".")
	}
	return nil
}

// Address returns host:port for the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the server's base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// StylePolicy returns the parsed style policy, falling back to Class.
func (c *Config) StylePolicy() style.Policy {
	p, err := style.ParsePolicy(c.Style.Policy)
	if err != nil {
		return style.Class
	}
	return p
}

// CacheTTL returns the parsed cache TTL, or zero if it does not parse.
func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.TTL)
	return d
}

// MetricsEnabled reports whether the metrics endpoint is served.
func (c *Config) MetricsEnabled() bool {
	return c.Server.MetricsPath != "-"
}

// OutputPath returns the export directory, resolved against Dir.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Export.Dir) {
		return c.Export.Dir
	}
	return filepath.Join(c.Dir(), c.Export.Dir)
}
