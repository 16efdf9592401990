package multiform

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/multiform/config"
)

// Default budgets, matching RFC 7578's typical usage: form text is small,
// file payloads dominate.
const (
	DefaultTextLimit int64 = 1 << 20   // 1 MiB of text across all text parts
	DefaultFileLimit int64 = 512 << 20 // 512 MiB of file bytes across all file parts
	DefaultMaxParts  int   = 1000
)

// Config bounds a single decode operation. It is read once when Decode
// starts and never mutated mid-decode; the same Config value can be shared
// across concurrent decodes.
//
// Zero fields fall back to the package defaults, so Config{} is usable as-is.
type Config struct {
	// TextLimit caps the cumulative bytes accepted into text fields.
	TextLimit int64 `env:"MULTIFORM_TEXT_LIMIT" envDefault:"1048576"`

	// FileLimit caps the cumulative bytes written to temp files.
	FileLimit int64 `env:"MULTIFORM_FILE_LIMIT" envDefault:"536870912"`

	// MaxParts caps how many parts the body may contain. The (MaxParts+1)-th
	// part aborts the decode.
	MaxParts int `env:"MULTIFORM_MAX_PARTS" envDefault:"1000"`

	// TempDir is where file parts are materialized. Empty means the OS
	// default temp directory.
	TempDir string `env:"MULTIFORM_TEMP_DIR"`

	// WriteWorkers bounds how many temp-file writes may be in flight across
	// the decode's file parts.
	WriteWorkers int `env:"MULTIFORM_WRITE_WORKERS" envDefault:"4"`

	// Logger receives decode progress at debug level. Nil disables logging.
	Logger *slog.Logger `env:"-"`
}

// DefaultConfig returns a Config with the package defaults filled in.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// ConfigFromEnv builds a Config from MULTIFORM_* environment variables,
// falling back to the package defaults.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := config.Load(&c); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.TextLimit <= 0 {
		c.TextLimit = DefaultTextLimit
	}
	if c.FileLimit <= 0 {
		c.FileLimit = DefaultFileLimit
	}
	if c.MaxParts <= 0 {
		c.MaxParts = DefaultMaxParts
	}
	if c.WriteWorkers <= 0 {
		c.WriteWorkers = 4
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
