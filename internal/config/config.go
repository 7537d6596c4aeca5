package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/skygen-app/skygen/internal/app"
	"github.com/skygen-app/skygen/internal/navigation"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	// Send and Resolve select a one-shot command instead of the TUI.
	Send    string
	Resolve string
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	DefaultPollInterval = 500 * time.Millisecond

	envConfig       = "SKYGEN_CONFIG"
	envOpen         = "SKYGEN_OPEN"
	envInbox        = "SKYGEN_INBOX"
	envWidth        = "SKYGEN_WIDTH"
	envHeight       = "SKYGEN_HEIGHT"
	envShowFooter   = "SKYGEN_FOOTER"
	envVerbose      = "SKYGEN_VERBOSE"
	envTrace        = "SKYGEN_TRACE"
	envLogFile      = "SKYGEN_LOG_FILE"
	envClearDelay   = "SKYGEN_CLEAR_DELAY"
	envPollInterval = "SKYGEN_POLL_INTERVAL"
)

// fileConfig mirrors the optional TOML file. Nil fields were not set.
type fileConfig struct {
	Open         *string   `toml:"open"`
	Inbox        *string   `toml:"inbox"`
	Width        *int      `toml:"width"`
	Height       *int      `toml:"height"`
	Footer       *bool     `toml:"footer"`
	Trace        *bool     `toml:"trace"`
	Verbose      *bool     `toml:"verbose"`
	LogFile      *string   `toml:"log_file"`
	ClearDelay   *duration `toml:"clear_delay"`
	PollInterval *duration `toml:"poll_interval"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Each setting
// comes from the first of flag, environment, config file and default that
// provides it.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("skygen", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", "", "path to a TOML config file")
	open := fs.String("open", "", "deep link to open at startup")
	inbox := fs.String("inbox", "", "path of the URL inbox file to watch")
	send := fs.String("send", "", "append a deep link to the inbox and exit")
	resolve := fs.String("resolve", "", "print how a deep link routes as JSON and exit")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", false, "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", false, "report every opened link")
	logFile := fs.String("log-file", "", "path to the log file")
	clearDelay := fs.Duration("clear-delay", navigation.DefaultClearDelay, "how long an arrived link stays pending")
	pollInterval := fs.Duration("poll-interval", DefaultPollInterval, "how often the inbox is checked")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["open"] && fs.NArg() > 0 {
		*open = fs.Arg(0)
		set["open"] = true
	}

	src := sources{set: set, env: env}
	src.file.path = pickString(src, "config", *configFile, envConfig, nil, "")
	if src.file.path != "" {
		if _, err := toml.DecodeFile(src.file.path, &src.file.values); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", src.file.path, err)
		}
	}
	fv := src.file.values

	cfg := Config{
		App: app.Config{
			Width:        pick(src, "width", *width, envWidth, strconv.Atoi, fv.Width, 0),
			Height:       pick(src, "height", *height, envHeight, strconv.Atoi, fv.Height, 0),
			ShowFooter:   pick(src, "footer", *footer, envShowFooter, strconv.ParseBool, fv.Footer, false),
			Verbose:      pick(src, "verbose", *verbose, envVerbose, strconv.ParseBool, fv.Verbose, false),
			InitialURL:   pickString(src, "open", *open, envOpen, fv.Open, ""),
			Inbox:        pickString(src, "inbox", *inbox, envInbox, fv.Inbox, ""),
			ClearDelay:   pick(src, "clear-delay", *clearDelay, envClearDelay, time.ParseDuration, fv.ClearDelay.value(), navigation.DefaultClearDelay),
			PollInterval: pick(src, "poll-interval", *pollInterval, envPollInterval, time.ParseDuration, fv.PollInterval.value(), DefaultPollInterval),
		},
		Logging: Logging{
			FilePath: pickString(src, "log-file", *logFile, envLogFile, fv.LogFile, ""),
			Trace:    pick(src, "trace", *trace, envTrace, strconv.ParseBool, fv.Trace, false),
		},
		Send:    *send,
		Resolve: *resolve,
		File:    src.file.path,
		Args:    append([]string(nil), args...),
	}
	cfg.Features.Verbose = cfg.App.Verbose
	cfg.Flags = map[string]string{
		"config":       cfg.File,
		"open":         cfg.App.InitialURL,
		"inbox":        cfg.App.Inbox,
		"send":         cfg.Send,
		"resolve":      cfg.Resolve,
		"width":        strconv.Itoa(cfg.App.Width),
		"height":       strconv.Itoa(cfg.App.Height),
		"footer":       strconv.FormatBool(cfg.App.ShowFooter),
		"trace":        strconv.FormatBool(cfg.Logging.Trace),
		"verbose":      strconv.FormatBool(cfg.App.Verbose),
		"logFile":      cfg.Logging.FilePath,
		"clearDelay":   cfg.App.ClearDelay.String(),
		"pollInterval": cfg.App.PollInterval.String(),
	}
	return cfg, nil
}

type sources struct {
	set  map[string]bool
	env  map[string]string
	file struct {
		path   string
		values fileConfig
	}
}

func (d *duration) value() *time.Duration {
	if d == nil {
		return nil
	}
	return &d.Duration
}

// pick resolves one setting. Unparseable environment values are ignored.
func pick[T any](src sources, name string, flagValue T, envKey string, parse func(string) (T, error), fileValue *T, fallback T) T {
	if src.set[name] {
		return flagValue
	}
	if v, ok := src.env[envKey]; ok && strings.TrimSpace(v) != "" {
		if parsed, err := parse(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	if fileValue != nil {
		return *fileValue
	}
	return fallback
}

func pickString(src sources, name, flagValue, envKey string, fileValue *string, fallback string) string {
	return pick(src, name, flagValue, envKey, func(s string) (string, error) { return s, nil }, fileValue, fallback)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.ClearDelay <= 0 {
		return fmt.Errorf("clear-delay must be positive (got %s)", cfg.App.ClearDelay)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive (got %s)", cfg.App.PollInterval)
	}
	if cfg.Send != "" && cfg.Resolve != "" {
		return errors.New("send and resolve cannot be combined")
	}
	if cfg.Send != "" && cfg.App.Inbox == "" {
		return errors.New("send requires an inbox path")
	}
	return nil
}
