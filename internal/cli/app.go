package cli

import (
	"fmt"
	"io"
	"log/slog"

	"portfolio-blog/internal/config"
	"portfolio-blog/internal/infra/adapter/persistence/file"
	"portfolio-blog/internal/infra/content"
	"portfolio-blog/internal/observability/logging"
	"portfolio-blog/internal/repository"
)

// app holds the components shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	reader *content.Reader
	repo   repository.PostRepository
}

// loadApp resolves the configuration and wires the content pipeline.
// Logs go to logOut, which also becomes the default slog destination.
func loadApp(opts *RootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logOut, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(logger)

	reader := content.NewReader(cfg.Content.Dir, content.NewParser(), cfg.Content.Extensions...)
	repo := file.NewPostRepo(reader, file.Options{
		ReadConcurrency: cfg.Content.ReadConcurrency,
		Logger:          logger,
	})

	return &app{cfg: cfg, logger: logger, reader: reader, repo: repo}, nil
}
