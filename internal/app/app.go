package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/confmerge/internal/ctxlog"
	"github.com/vk/confmerge/internal/fsutil"
	"github.com/vk/confmerge/internal/resolver"
	"github.com/vk/confmerge/internal/source"
	"github.com/vk/confmerge/internal/value"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. The resolved document is written to outW; logs go to errW so
// the rendered output stays pipeable.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	reader source.Reader
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, errW io.Writer, config *Config, reader source.Reader) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		reader: reader,
		config: config,
	}
}

// Run resolves the configured document (or directory of documents) and
// renders the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	info, err := os.Stat(a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("cannot access config path: %w", err)
	}

	var resolved value.Value
	if info.IsDir() {
		resolved, err = a.resolveDirectory(ctx, a.config.ConfigPath)
	} else {
		resolved, err = a.resolveDocument(ctx, a.config.ConfigPath)
	}
	if err != nil {
		return err
	}
	a.logger.Debug("Resolution finished.")

	rendered, err := a.render(resolved)
	if err != nil {
		return fmt.Errorf("failed to render resolved config: %w", err)
	}
	if _, err := a.outW.Write(rendered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveDocument loads a single root document through the reader and
// resolves its includes.
func (a *App) resolveDocument(ctx context.Context, path string) (value.Value, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve absolute path for %s: %w", path, err)
	}
	a.logger.Debug("Loading root document.", "path", abs)

	raw, err := a.reader.ReadFile(ctx, abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	parsed, err := a.reader.Parse(ctx, abs, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", abs, err)
	}

	return resolver.ResolveIncludes(ctx, parsed, abs, a.reader)
}

// resolveDirectory resolves every config file under dir independently and
// folds the results together in lexical path order, later files overriding
// earlier ones (the conf.d pattern).
func (a *App) resolveDirectory(ctx context.Context, dir string) (value.Value, error) {
	files, err := fsutil.FindFilesByExtensions(dir, source.Extensions())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no config files found in %s", dir)
	}
	a.logger.Debug("Directory mode.", "dir", dir, "file_count", len(files))

	var merged value.Value
	for _, f := range files {
		resolved, err := a.resolveDocument(ctx, f)
		if err != nil {
			return nil, err
		}
		merged = resolver.Merge(merged, resolved)
	}
	return merged, nil
}

func (a *App) render(v value.Value) ([]byte, error) {
	if a.config.OutputFormat == "yaml" {
		return value.EncodeYAML(v)
	}
	out, err := value.EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
