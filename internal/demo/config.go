package demo

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/melba-ui/melba/internal/errors"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "melba.json"

	// DefaultHost is the default listen host.
	DefaultHost = "localhost"

	// DefaultPort is the default listen port.
	DefaultPort = 8484
)

// Config holds the demo server configuration.
//
// Sources are merged in priority order: environment variables
// (MELBA_*) over the config file over built-in defaults.
type Config struct {
	// Host is the interface the server binds to.
	Host string `koanf:"host" validate:"required"`

	// Port is the TCP port the server listens on.
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// LogLevel controls log verbosity.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// ShutdownTimeout is how many seconds graceful shutdown may take.
	ShutdownTimeout int `koanf:"shutdown_timeout" validate:"min=1,max=300"`

	// SessionTTL is how many seconds a rendered page may wait before
	// its WebSocket arrives. Sessions with no socket past the TTL are
	// purged.
	SessionTTL int `koanf:"session_ttl" validate:"min=1,max=3600"`

	// Overlay configures the toast overlay on the demo page.
	Overlay OverlayConfig `koanf:"overlay"`
}

// OverlayConfig configures overlay placement on the demo page.
type OverlayConfig struct {
	// Position is the viewport corner the overlay anchors to.
	Position string `koanf:"position" validate:"oneof=bottom-right bottom-left top-right top-left"`

	// Width is the overlay width in CSS pixels. Zero keeps the
	// overlay default.
	Width float64 `koanf:"width" validate:"min=0,max=2000"`
}

// defaults returns the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"host":             DefaultHost,
		"port":             DefaultPort,
		"log_level":        "info",
		"log_format":       "text",
		"shutdown_timeout": 10,
		"session_ttl":      60,
		"overlay.position": "bottom-right",
		"overlay.width":    0.0,
	}
}

// LoadConfig loads configuration from the given file path, overlaid
// with MELBA_* environment variables. An empty path skips the file
// stage; a missing file at an explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		k.Set(key, value)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.New("E040").
				WithDetail("Cannot read " + path + ": " + err.Error()).
				WithSuggestion("Check that the file exists and is readable")
		}
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, errors.New("E040").
				WithDetail("Failed to parse " + path + ": " + err.Error()).
				WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		}
	}

	k.Load(env.Provider("MELBA_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.New("E040").
			WithDetail("Failed to unmarshal configuration: " + err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.New("E041").
			WithDetail(validationDetail(err)).
			WithSuggestion("Fix the listed fields in " + ConfigFileName + " or the MELBA_* environment")
	}
	return nil
}

// validationDetail flattens validator errors into one line per field.
func validationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+" failed "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}

// envTransform maps environment variable names to config keys.
// MELBA_OVERLAY__POSITION becomes overlay.position; single
// underscores stay part of the key (MELBA_LOG_LEVEL -> log_level).
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "MELBA_"))
	return strings.ReplaceAll(s, "__", ".")
}

// Address returns the host:port string the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the browsable URL for the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ShutdownGrace returns the shutdown timeout as a duration.
func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// SessionGrace returns the pending-session TTL as a duration.
func (c *Config) SessionGrace() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}
