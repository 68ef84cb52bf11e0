package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/sectionlist/internal/app"
	"github.com/atomicstack/sectionlist/internal/config"
	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is set during build with -ldflags.
var version = "dev"

// configError marks failures that exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	root := newRootCommand(environ, stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cfgErr.err)
		return 2
	}
	logging.Error(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCommand(environ []string, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "sectionlist",
		Short:         "Scroll a sectioned list with sticky headers in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args)
			if err != nil {
				return err
			}
			defer events.App.Stop("exit")
			return app.Run(cfg.App)
		},
	}
	root.PersistentFlags().AddFlagSet(config.NewFlagSet(environ))

	var opts app.DumpOptions
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print one layout pass without a terminal",
		Long: `Lays the data set out once at the configured size and prints the rows.
Width and height default to 40x12 when not set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args)
			if err != nil {
				return err
			}
			defer events.App.Stop("dump")
			return app.Dump(cfg.App, stdout, opts)
		},
	}
	dump.Flags().IntVar(&opts.Position, "position", -1, "snap this position to the top first")
	dump.Flags().IntVar(&opts.ScrollBy, "scroll", 0, "scroll by this many rows after the pass")
	dump.Flags().BoolVar(&opts.Children, "children", false, "list the attached elements and their rectangles")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "sectionlist %s\n", version)
		},
	}

	root.AddCommand(dump, versionCmd)
	return root
}

// setup reads the configuration from the parsed flags and prepares logging.
func setup(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.FromFlags(cmd.Flags())
	if err != nil {
		return config.Config{}, configError{err}
	}
	cfg.Args = append([]string(nil), args...)
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, configError{err}
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	return cfg, nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
