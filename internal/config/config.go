package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the overlay client needs at startup.
type Config struct {
	SocketPath       string
	ReconnectDelay   time.Duration
	MaxAttempts      int // zero means unlimited
	PlaceholderAfter int // zero disables the disconnected placeholder
	PollTimeout      time.Duration
	MaxDisplayLength int
	Theme            string
	LogFile          string
	LogLevel         string
}

const (
	defaultConfigPath       = "~/.config/lyrics-overlay/config.toml"
	defaultSocketPath       = "/tmp/lyrics_app.sock"
	defaultReconnectDelay   = 3 * time.Second
	defaultPlaceholderAfter = 3
	defaultPollTimeout      = 100 * time.Millisecond
	defaultMaxDisplayLength = 50
	defaultTheme            = "Teal"
	defaultLogFile          = "~/.local/state/lyrics-overlay/overlay.log"
	defaultLogLevel         = "info"
)

// Environment variables recognised by Load. They win over the config file.
const (
	EnvConfigPath       = "LYRICS_OVERLAY_CONFIG"
	EnvSocketPath       = "LYRICS_SOCKET_PATH"
	EnvReconnectDelayMS = "LYRICS_RECONNECT_DELAY_MS"
	EnvMaxAttempts      = "LYRICS_MAX_RECONNECT_ATTEMPTS"
	EnvPlaceholderAfter = "LYRICS_PLACEHOLDER_AFTER"
	EnvLogLevel         = "LYRICS_LOG_LEVEL"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SocketPath:       defaultSocketPath,
		ReconnectDelay:   defaultReconnectDelay,
		PlaceholderAfter: defaultPlaceholderAfter,
		PollTimeout:      defaultPollTimeout,
		MaxDisplayLength: defaultMaxDisplayLength,
		Theme:            defaultTheme,
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
// An empty path resolves to $LYRICS_OVERLAY_CONFIG or the default location.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := cfg.readFile(file); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SocketPath       string `toml:"socket_path"`
		ReconnectDelayMS int    `toml:"reconnect_delay_ms"`
		MaxAttempts      *int   `toml:"max_reconnect_attempts"`
		PlaceholderAfter *int   `toml:"placeholder_after"`
		PollTimeoutMS    int    `toml:"poll_timeout_ms"`
		MaxDisplayLength int    `toml:"max_display_length"`
		Theme            string `toml:"theme"`
		LogFile          string `toml:"log_file"`
		LogLevel         string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if socket := strings.TrimSpace(raw.SocketPath); socket != "" {
		c.SocketPath = mustExpand(socket)
	}
	if raw.ReconnectDelayMS > 0 {
		c.ReconnectDelay = time.Duration(raw.ReconnectDelayMS) * time.Millisecond
	}
	if raw.MaxAttempts != nil {
		if *raw.MaxAttempts < 0 {
			return fmt.Errorf("parse config: max_reconnect_attempts must not be negative")
		}
		c.MaxAttempts = *raw.MaxAttempts
	}
	if raw.PlaceholderAfter != nil {
		if *raw.PlaceholderAfter < 0 {
			return fmt.Errorf("parse config: placeholder_after must not be negative")
		}
		c.PlaceholderAfter = *raw.PlaceholderAfter
	}
	if raw.PollTimeoutMS > 0 {
		c.PollTimeout = time.Duration(raw.PollTimeoutMS) * time.Millisecond
	}
	if raw.MaxDisplayLength > 0 {
		c.MaxDisplayLength = raw.MaxDisplayLength
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		c.Theme = theme
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		c.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if socket := strings.TrimSpace(os.Getenv(EnvSocketPath)); socket != "" {
		c.SocketPath = mustExpand(socket)
	}
	if ms, ok, err := envInt(EnvReconnectDelayMS); err != nil {
		return err
	} else if ok && ms > 0 {
		c.ReconnectDelay = time.Duration(ms) * time.Millisecond
	}
	if n, ok, err := envInt(EnvMaxAttempts); err != nil {
		return err
	} else if ok {
		c.MaxAttempts = n
	}
	if n, ok, err := envInt(EnvPlaceholderAfter); err != nil {
		return err
	} else if ok {
		c.PlaceholderAfter = n
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return nil
}

func envInt(key string) (int, bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("parse %s=%q: want a non-negative integer", key, value)
	}
	return n, true, nil
}

// LoadEnvFiles loads the first env file found among .env in the working
// directory and ~/.lyrics.env. Variables already present in the environment
// are left untouched. It returns the file that was loaded, if any.
func LoadEnvFiles() (string, error) {
	candidates := []string{".env", "~/.lyrics.env"}
	for _, candidate := range candidates {
		path := mustExpand(candidate)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return path, fmt.Errorf("load env file %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
