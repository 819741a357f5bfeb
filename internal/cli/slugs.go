package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-blog/internal/handler/http/post"
	postUC "portfolio-blog/internal/usecase/post"
)

// SlugsOptions holds flags for the slugs command.
type SlugsOptions struct {
	*RootOptions
	JSON bool
}

// NewSlugsCommand creates the slugs command.
func NewSlugsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SlugsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "slugs",
		Short: "List the slug of every post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlugs(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print a JSON document instead of one slug per line")

	return cmd
}

func runSlugs(opts *SlugsOptions, cmd *cobra.Command) error {
	a, err := loadApp(opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, err := postUC.NewListPostSlugs(a.repo).Execute(cmd.Context())
	if err != nil {
		return err
	}

	slugs := post.ToSlugs(out.Slugs)
	w := cmd.OutOrStdout()
	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(post.SlugsResponse{Slugs: slugs})
	}
	for _, s := range slugs {
		fmt.Fprintln(w, s)
	}
	return nil
}
