// Package cli implements the blog command line: serving the HTTP API,
// exporting the static site and listing post slugs.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Version    string
}

// NewRootCommand creates the root command of the blog CLI.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{Version: version}

	cmd := &cobra.Command{
		Use:           "blog",
		Short:         "Markdown blog content server",
		Long:          "Serves and exports a blog built from a directory of Markdown posts with front matter.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file (default $BLOG_CONFIG)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewSlugsCommand(opts))

	return cmd
}
