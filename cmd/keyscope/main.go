// Package main is the entry point for the keyscope raw input viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/keyscope/keyscope/internal/capture"
	"github.com/keyscope/keyscope/internal/config"
	"github.com/keyscope/keyscope/internal/filter"
	"github.com/keyscope/keyscope/internal/metrics"
	"github.com/keyscope/keyscope/internal/pipeline"
	"github.com/keyscope/keyscope/internal/rawkey"
	"github.com/keyscope/keyscope/internal/session"
	"github.com/keyscope/keyscope/internal/viewer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options are the command-line settings layered over the config file.
type options struct {
	ConfigPath   string
	ReplayPath   string
	RecordPath   string
	FilterScript string
	Raw          bool
	Headless     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.Raw {
		cfg.Adjust = false
	}
	if opts.RecordPath != "" {
		cfg.RecordPath = opts.RecordPath
	}
	if opts.FilterScript != "" {
		cfg.FilterScript = opts.FilterScript
	}

	log := session.NewLog(cfg.MaxEvents)
	m := metrics.New()

	pipeOpts := []pipeline.Option{
		pipeline.WithMetrics(m),
		pipeline.WithSinks(log),
	}

	var recorder *session.Recorder
	if cfg.RecordPath != "" {
		f, err := os.OpenFile(cfg.RecordPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening record file: %v\n", err)
			return 1
		}
		defer f.Close()

		recorder = session.NewRecorder(f)
		pipeOpts = append(pipeOpts, pipeline.WithSinks(recorder))
	}

	if cfg.FilterScript != "" {
		src, err := os.ReadFile(cfg.FilterScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading filter script: %v\n", err)
			return 1
		}
		flt, err := filter.New(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer flt.Close()
		pipeOpts = append(pipeOpts, pipeline.WithFilter(flt))
	}

	pipe := pipeline.New(rawkey.NewNormalizer(), pipeOpts...)
	pipe.SetAdjust(cfg.Adjust)

	input := os.Stdin
	if opts.ReplayPath != "" && opts.ReplayPath != "-" {
		f, err := os.Open(opts.ReplayPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening replay file: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	if err := pipe.Drain(capture.NewReplaySource(input)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading input: %v\n", err)
		return 1
	}
	if recorder != nil && recorder.Err() != nil {
		fmt.Fprintf(os.Stderr, "Warning: recording stopped: %v\n", recorder.Err())
	}

	if opts.Headless {
		if err := viewer.Dump(os.Stdout, log, cfg.Columns); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	view, err := viewer.New(log, &cfg.Columns, m, pipe.Clear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Pick up config edits made while the viewer is open.
	watcher, err := config.Watch(cfgPath, view.ApplySettings)
	if err == nil {
		defer watcher.Close()
	}

	if err := view.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Column format changes made in the viewer persist.
	if err := config.Save(cfgPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving config: %v\n", err)
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.RecordPath, "record", "", "Append processed events to a JSONL file")
	flag.StringVar(&opts.RecordPath, "o", "", "Append processed events to a JSONL file (shorthand)")
	flag.StringVar(&opts.FilterScript, "filter", "", "Lua filter script")
	flag.StringVar(&opts.FilterScript, "f", "", "Lua filter script (shorthand)")
	flag.BoolVar(&opts.Raw, "raw", false, "Disable key adjustments, show reports as received")
	flag.BoolVar(&opts.Raw, "r", false, "Disable key adjustments (shorthand)")
	flag.BoolVar(&opts.Headless, "headless", false, "Print the event table to stdout instead of running the UI")
	flag.BoolVar(&opts.Headless, "n", false, "Print the event table to stdout (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keyscope - raw keyboard input viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyscope [options] [capture.jsonl]\n\n")
		fmt.Fprintf(os.Stderr, "Reads raw key reports from the capture file (or stdin) and shows\n")
		fmt.Fprintf(os.Stderr, "the normalized events in an interactive table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyscope capture.jsonl        Browse a capture interactively\n")
		fmt.Fprintf(os.Stderr, "  keyscope -n capture.jsonl     Print the event table and exit\n")
		fmt.Fprintf(os.Stderr, "  keyscope -r capture.jsonl     Show reports without adjustments\n")
		fmt.Fprintf(os.Stderr, "  keyscope -f only_f.lua -      Filter stdin through a Lua script\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Keyscope %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.ReplayPath = flag.Arg(0)
	}

	return opts
}
