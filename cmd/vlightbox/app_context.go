package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vlightbox/internal/download"
	"github.com/alexisbeaulieu97/vlightbox/internal/gallery"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/logger"
	"github.com/alexisbeaulieu97/vlightbox/internal/plugin"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	"github.com/alexisbeaulieu97/vlightbox/internal/settings"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Settings     settings.Settings
	SettingsFile string
	Logger       ports.Logger
	Publisher    *events.LoggingPublisher
	Registry     *plugin.ComponentRegistry

	// logsToTerminal is true when log output shares the terminal with the TUI.
	logsToTerminal bool
	closers        []io.Closer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	s, used, err := settings.Load(settings.LoadOptions{File: flags.configFile})
	if err != nil {
		return nil, newCommandError("load settings", "reading configuration", err, "Fix the settings file or pass --config with a valid path.")
	}
	if flags.logFormat != "" {
		s.Log.Format = flags.logFormat
	}
	if flags.logFile != "" {
		s.Log.File = flags.logFile
	}
	if flags.verbose {
		s.Log.Level = "debug"
	}
	s.Normalize()
	if err := settings.Validate(s); err != nil {
		return nil, newCommandError("load settings", "validating flags", err, "Use --log-format text, json, logfmt or zerolog.")
	}

	app := &AppContext{Settings: s, SettingsFile: used}

	writer := cmd.ErrOrStderr()
	app.logsToTerminal = true
	if s.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(s.Log.File), 0o755); err != nil {
			return nil, newCommandError("open log file", s.Log.File, err, "Check the directory permissions.")
		}
		f, err := os.OpenFile(s.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError("open log file", s.Log.File, err, "Check the file permissions.")
		}
		app.closers = append(app.closers, f)
		writer = f
		app.logsToTerminal = false
	}

	log, err := buildLogger(s.Log, writer)
	if err != nil {
		app.Close()
		return nil, newCommandError("create logger", "configuring logging", err, "Use --log-format text, json, logfmt or zerolog.")
	}
	app.Logger = log

	registry, err := plugin.NewComponentRegistry(plugin.DefaultConfig(), log)
	if err != nil {
		app.Close()
		return nil, err
	}
	if err := lightbox.Install(registry); err != nil {
		app.Close()
		return nil, err
	}
	app.Registry = registry
	app.Publisher = events.NewLoggingPublisher(log)

	return app, nil
}

func buildLogger(cfg settings.LogSettings, writer io.Writer) (ports.Logger, error) {
	if strings.EqualFold(cfg.Format, "zerolog") {
		return logger.New(logger.Options{Level: cfg.Level, Writer: writer, Layer: "host"})
	}
	return logging.New(logging.Options{
		Writer: writer,
		Level:  cfg.Level,
		Format: cfg.Format,
		Layer:  "host",
	})
}

// CommandContext returns a context carrying a fresh correlation ID and a logger scoped to operation.
func (a *AppContext) CommandContext(cmd *cobra.Command, operation string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = ports.NewCorrelation(ctx)
	return ctx, a.Logger.With("operation", operation)
}

// LoadGallery resolves a source with the configured ordering and clone directory.
func (a *AppContext) LoadGallery(ctx context.Context, source string, log ports.Logger) (*gallery.Gallery, error) {
	g, err := gallery.Load(ctx, source, gallery.Options{
		Sort:     gallery.SortByName(a.Settings.Gallery.Sort),
		CloneDir: a.Settings.Gallery.CloneDir,
		Logger:   log,
	})
	if err != nil {
		return nil, newCommandError("load gallery", fmt.Sprintf("reading %q", source), err, "Pass a directory, an archive, a gallery manifest or a git URL.")
	}
	return g, nil
}

// Saver builds the downloader writing into the configured directory.
func (a *AppContext) Saver(log ports.Logger) *download.Saver {
	return download.New(download.Options{Dir: a.Settings.Download.Dir, Logger: log})
}

// Close releases files opened for logging.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
