package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/sectionlist/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFixture       = "SECTIONLIST_FIXTURE"
	envStateFile     = "SECTIONLIST_STATE_FILE"
	envWidth         = "SECTIONLIST_WIDTH"
	envHeight        = "SECTIONLIST_HEIGHT"
	envRTL           = "SECTIONLIST_RTL"
	envScrollStep    = "SECTIONLIST_SCROLL_STEP"
	envSmoothStep    = "SECTIONLIST_SMOOTH_STEP"
	envWatchInterval = "SECTIONLIST_WATCH_INTERVAL"
	envNoSticky      = "SECTIONLIST_NO_STICKY"
	envTrace         = "SECTIONLIST_TRACE"
	envLogFile       = "SECTIONLIST_LOG_FILE"
)

const (
	defaultScrollStep    = 1
	defaultSmoothStep    = 2
	defaultWatchInterval = 1500 * time.Millisecond
	maxStep              = 1000
)

// NewFlagSet declares every option on a fresh flag set whose defaults come
// from environ. The CLI attaches the same set to its root command.
func NewFlagSet(environ []string) *pflag.FlagSet {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("sectionlist", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("fixture", envOrDefault(env, envFixture, ""), "path to the YAML data set")
	fs.String("state-file", envOrDefault(env, envStateFile, ""), "where the scroll anchor is saved between runs")
	fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("rtl", envOrBool(env, envRTL, false), "lay out right to left")
	fs.Int("scroll-step", envOrInt(env, envScrollStep, defaultScrollStep), "rows moved per arrow key or wheel tick")
	fs.Int("smooth-step", envOrInt(env, envSmoothStep, defaultSmoothStep), "rows moved per smooth scroll frame")
	fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, defaultWatchInterval), "fixture poll interval (0 disables reloads)")
	fs.Bool("no-sticky", envOrBool(env, envNoSticky, false), "draw every header inline without sticking")
	fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	return fs
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := NewFlagSet(environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), fs.Args()...)
	return cfg, Validate(cfg)
}

// FromFlags reads a parsed flag set built by NewFlagSet.
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	var errs []string
	str := func(name string) string {
		v, err := fs.GetString(name)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	num := func(name string) int {
		v, err := fs.GetInt(name)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	flag := func(name string) bool {
		v, err := fs.GetBool(name)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	interval, err := fs.GetDuration("watch-interval")
	if err != nil {
		errs = append(errs, err.Error())
	}
	cfg := Config{
		App: app.Config{
			FixturePath:   str("fixture"),
			StateFile:     str("state-file"),
			Width:         num("width"),
			Height:        num("height"),
			RTL:           flag("rtl"),
			ScrollStep:    num("scroll-step"),
			SmoothStep:    num("smooth-step"),
			WatchInterval: interval,
			NoSticky:      flag("no-sticky"),
		},
		Logging: Logging{
			FilePath: str("log-file"),
			Trace:    flag("trace"),
		},
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("read flags: %s", strings.Join(errs, "; "))
	}
	cfg.Flags = map[string]string{
		"fixture":       cfg.App.FixturePath,
		"stateFile":     cfg.App.StateFile,
		"width":         strconv.Itoa(cfg.App.Width),
		"height":        strconv.Itoa(cfg.App.Height),
		"rtl":           strconv.FormatBool(cfg.App.RTL),
		"scrollStep":    strconv.Itoa(cfg.App.ScrollStep),
		"smoothStep":    strconv.Itoa(cfg.App.SmoothStep),
		"watchInterval": cfg.App.WatchInterval.String(),
		"noSticky":      strconv.FormatBool(cfg.App.NoSticky),
		"trace":         strconv.FormatBool(cfg.Logging.Trace),
		"logFile":       cfg.Logging.FilePath,
	}
	return cfg, nil
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

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks value ranges.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.ScrollStep < 1 || a.ScrollStep > maxStep {
		return fmt.Errorf("scroll-step must be between 1 and %d (got %d)", maxStep, a.ScrollStep)
	}
	if a.SmoothStep < 1 || a.SmoothStep > maxStep {
		return fmt.Errorf("smooth-step must be between 1 and %d (got %d)", maxStep, a.SmoothStep)
	}
	if a.WatchInterval < 0 {
		return fmt.Errorf("watch-interval must be >= 0 (got %s)", a.WatchInterval)
	}
	return nil
}
