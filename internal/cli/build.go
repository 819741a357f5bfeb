package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio-blog/internal/site"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Output string
	Watch  bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the blog as static JSON",
		Long: `Export the blog as static JSON files.

The output directory receives index.json, slugs.json, one post/<slug>.json
per post and one tag/<tag>.json per distinct tag. With --watch the export
is rebuilt whenever the content directory changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runBuild(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (overrides export.output_dir)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "rebuild on content changes (or export.watch)")

	return cmd
}

func runBuild(ctx context.Context, opts *BuildOptions, cmd *cobra.Command) error {
	a, err := loadApp(opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	outputDir := a.cfg.Export.OutputDir
	if opts.Output != "" {
		outputDir = opts.Output
	}
	if err := site.CheckOutputDir(a.cfg.Content.Dir, outputDir); err != nil {
		return err
	}
	builder := site.NewBuilder(a.repo, site.Options{
		OutputDir:   outputDir,
		ContentDir:  a.cfg.Content.Dir,
		RecentLimit: a.cfg.Server.RecentLimit,
		SiteURL:     a.cfg.SiteURL,
		Logger:      a.logger,
	})

	res, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d posts and %d tags to %s\n", res.Posts, res.Tags, outputDir)

	if !opts.Watch && !a.cfg.Export.Watch {
		return nil
	}

	a.logger.Info("watching for changes",
		slog.String("dir", a.cfg.Content.Dir),
		slog.Duration("debounce", a.cfg.Export.WatchDebounce))
	return site.Watch(ctx, a.cfg.Content.Dir, a.cfg.Export.WatchDebounce, func(ctx context.Context) error {
		_, err := builder.Build(ctx)
		return err
	})
}
