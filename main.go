package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/route-guide/internal/app"
	"github.com/atomicstack/route-guide/internal/catalog"
	"github.com/atomicstack/route-guide/internal/config"
	"github.com/atomicstack/route-guide/internal/logging"
	"github.com/atomicstack/route-guide/internal/logging/events"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n\n%s", err, config.Usage())
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	cat := catalog.Default()
	if runtimeCfg.Features.ListTitles {
		if err := app.ListTitles(os.Stdout, cat); err != nil {
			logging.Error(err)
			os.Exit(1)
		}
		return
	}

	session, err := app.Prepare(runtimeCfg.App, cat)
	if err != nil {
		logging.Error(err)
		reportPrepareError(os.Stderr, err, runtimeCfg.App.Title, cat)
		os.Exit(exitCodeFor(err))
	}

	if !interactive() {
		fmt.Fprintln(os.Stderr, "Error: route-guide needs an interactive terminal (try --list)")
		os.Exit(2)
	}

	if err := app.Run(session, runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTitleError(err error) bool {
	return errors.Is(err, catalog.ErrUnknownTitle) || errors.Is(err, catalog.ErrNotImplemented)
}

// exitCodeFor separates bad input (2) from failures reading content (1).
func exitCodeFor(err error) int {
	if isTitleError(err) {
		return 2
	}
	return 1
}

// reportPrepareError explains why a walkthrough could not be opened. Title
// errors list what can be browsed instead.
func reportPrepareError(w io.Writer, err error, query string, cat *catalog.Catalog) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if !isTitleError(err) {
		return
	}
	if available := cat.Available(); len(available) > 0 {
		fmt.Fprintf(w, "Available titles: %s\n", strings.Join(available, ", "))
	}
	if errors.Is(err, catalog.ErrUnknownTitle) {
		if suggestions := cat.Suggest(query); len(suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	}
}

func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
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
	Cygwin     bool   `json:"cygwin,omitempty"`
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
		entry := ttyProbeResult{Name: probe.name, Cygwin: isatty.IsCygwinTerminal(probe.fd)}
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
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
