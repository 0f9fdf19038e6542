package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	flag "github.com/spf13/pflag"

	"github.com/miosa/shytable/app"
	"github.com/miosa/shytable/config"
	"github.com/miosa/shytable/logger"
)

var version = "dev"

// cliOptions holds everything parsed from the command line.
type cliOptions struct {
	configPath  string
	input       string
	logFile     string
	showVersion bool
	overrides   config.Overrides
}

var errHelp = errors.New("help requested")

// parseFlags parses args (without the program name). Only flags that were
// actually given end up in the overrides.
func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	var ov struct {
		rowHeight, bufferRows, rows int
		theme, logLevel, logFormat  string
	}

	fs := flag.NewFlagSet("shytable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Config file (JSONC); defaults to $XDG_CONFIG_HOME/shytable/config.json")
	fs.StringVarP(&opts.input, "input", "i", "", "Read one row per line from `file` (- for stdin) instead of generating rows")
	fs.IntVar(&ov.rowHeight, "row-height", 0, "Lines per row")
	fs.IntVar(&ov.bufferRows, "buffer-rows", 0, "Rows kept rendered beyond each edge of the viewport")
	fs.IntVarP(&ov.rows, "rows", "n", 0, "Number of demo rows to generate")
	fs.StringVar(&ov.theme, "theme", "", "Color theme: dark, light, catppuccin, tokyo-night")
	fs.StringVar(&opts.logFile, "log-file", "", "Append logs to `file` (default: discard)")
	fs.StringVar(&ov.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&ov.logFormat, "log-format", "", "Log format: text, json")
	fs.BoolVarP(&opts.showVersion, "version", "V", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if fs.Changed("row-height") {
		opts.overrides.RowHeight = &ov.rowHeight
	}
	if fs.Changed("buffer-rows") {
		opts.overrides.BufferRows = &ov.bufferRows
	}
	if fs.Changed("rows") {
		opts.overrides.Rows = &ov.rows
	}
	if fs.Changed("theme") {
		opts.overrides.Theme = &ov.theme
	}
	if fs.Changed("log-level") {
		opts.overrides.LogLevel = &ov.logLevel
	}
	if fs.Changed("log-format") {
		opts.overrides.LogFormat = &ov.logFormat
	}
	return opts, nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, k := range []string{"HOME", "XDG_CONFIG_HOME"} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, environ()))
}

func run(args []string, stdout, stderr io.Writer, env map[string]string) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "shytable: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "shytable %s\n", version)
		return 0
	}

	cfg, err := config.Load(config.LoadInput{
		ConfigPath: opts.configPath,
		Env:        env,
		Overrides:  opts.overrides,
	})
	if err != nil {
		fmt.Fprintf(stderr, "shytable: %v\n", err)
		return 1
	}

	// Level and format were validated by config.Load.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	format, _ := logger.ParseType(cfg.LogFormat)
	w, closeLog, err := logger.OpenFile(opts.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "shytable: %v\n", err)
		return 1
	}
	defer closeLog()
	log := logger.New(logger.Options{Writer: w, Level: level, Type: format})

	// Rows piped on stdin leave the terminal for the UI on /dev/tty.
	var progOpts []tea.ProgramOption
	termIn := os.Stdin
	if opts.input == "-" {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintf(stderr, "shytable: reading rows from stdin needs a terminal: %v\n", err)
			return 1
		}
		defer tty.Close()
		termIn = tty
		progOpts = append(progOpts, tea.WithInput(tty))
	}

	// Without an explicit theme, follow the terminal background.
	if opts.overrides.Theme == nil && cfg.Path == "" {
		if lipgloss.HasDarkBackground(termIn, os.Stdout) {
			cfg.Theme = "dark"
		} else {
			cfg.Theme = "light"
		}
	}

	savePath := cfg.Path
	if savePath == "" {
		savePath = opts.configPath
	}
	if savePath == "" {
		savePath = config.DefaultPath(env)
	}

	log.Info("starting",
		"version", version,
		"config", cfg.Path,
		"rows", cfg.Rows,
		"row_height", cfg.RowHeight,
		"buffer_rows", cfg.BufferRows,
		"input", opts.input,
	)

	m := app.New(app.Options{
		Config:     cfg,
		ConfigPath: savePath,
		Input:      opts.input,
		Version:    version,
		Logger:     log,
	})

	// In bubbletea v2, AltScreen and mouse mode are set on the View returned
	// by the model, not as program options.
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		fmt.Fprintf(stderr, "shytable: %v\n", err)
		return 1
	}
	return 0
}
