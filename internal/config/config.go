package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/route-guide/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	ListTitles bool
}

const (
	envTitle   = "ROUTE_GUIDE_TITLE"
	envData    = "ROUTE_GUIDE_DATA"
	envWidth   = "ROUTE_GUIDE_WIDTH"
	envHeight  = "ROUTE_GUIDE_HEIGHT"
	envList    = "ROUTE_GUIDE_LIST"
	envTrace   = "ROUTE_GUIDE_TRACE"
	envLogFile = "ROUTE_GUIDE_LOG_FILE"
)

const programName = "route-guide"

type flagValues struct {
	title   *string
	data    *string
	width   *int
	height  *int
	list    *bool
	trace   *bool
	logFile *string
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false
	v := flagValues{
		title:   fs.StringP("title", "t", envOrDefault(env, envTitle, ""), "title to browse, e.g. chaos_head"),
		data:    fs.String("data", envOrDefault(env, envData, ""), "load the walkthrough from a YAML file instead of the built-in dataset"),
		width:   fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:  fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		list:    fs.Bool("list", envOrBool(env, envList, false), "print the known titles and exit"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
	return fs, v
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Asking for help
// returns an error matching pflag.ErrHelp.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}
	if *v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *v.height)
	}

	cfg := Config{
		App: app.Config{
			Title:    strings.TrimSpace(*v.title),
			DataPath: strings.TrimSpace(*v.data),
			Width:    *v.width,
			Height:   *v.height,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Features: Features{
			ListTitles: *v.list,
		},
		Flags: map[string]string{
			"title":   *v.title,
			"data":    *v.data,
			"width":   strconv.Itoa(*v.width),
			"height":  strconv.Itoa(*v.height),
			"list":    strconv.FormatBool(*v.list),
			"trace":   strconv.FormatBool(*v.trace),
			"logFile": *v.logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Usage renders the flag summary.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return fmt.Sprintf("Usage: %s --title <title> [flags]\n\n%s", programName, fs.FlagUsages())
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

// MustLoad returns configuration or exits. Help requests print usage and
// exit cleanly.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n\n%s", err, Usage())
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.Features.ListTitles {
		return nil
	}
	if cfg.App.Title == "" && cfg.App.DataPath == "" {
		return fmt.Errorf("a title is required (--title or %s)", envTitle)
	}
	return nil
}
