package main

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/server"
)

func renderCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render one page to stdout",
		Long: `Render one page of the demo site.

Examples:
  markup render
  markup render /about --policy grouped
  markup render /posts/typed-trees -o post.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.New("E101").Wrap(err)
				}
				defer f.Close()
				w = f
			}
			return a.renderPage(cmd, path, w)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func (a *app) renderPage(cmd *cobra.Command, path string, w io.Writer) error {
	doc, err := a.site().Page(path)
	if stderrors.Is(err, server.ErrNotFound) {
		return errors.New("E102").Wrap(err).
			WithSuggestion("Known pages: " + strings.Join(a.site().Paths(), ", "))
	}
	if err != nil {
		return errors.New("E101").Wrap(err)
	}

	ctx := render.WithName(cmd.Context(), path)
	return renderError(a.newRenderer().RenderDocument(ctx, w, doc))
}

// renderError assigns a code to a render failure.
func renderError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.New("E103").Wrap(err)
	default:
		return errors.New("E101").Wrap(err)
	}
}
