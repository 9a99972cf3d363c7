package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/post"
)

type postResult struct {
	Path    string `json:"path"`
	Title   string `json:"title,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Preview string `json:"preview,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newPostCmd(rt *runtime) *cobra.Command {
	var (
		knownPath string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "post FILE...",
		Short: "Derive slugs for markdown posts with YAML front matter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			known, err := loadKnown(knownPath)
			if err != nil {
				return err
			}

			assigned := make(knownSlugs)
			var errs []error
			results := make([]postResult, 0, len(args))
			for _, path := range args {
				ctx := withPath(cmd.Context(), path)
				res, err := rt.postSlug(ctx, path, known, assigned, preview)
				if err != nil {
					rt.log.ErrorContext(ctx, "post slug failed", slog.String("error", err.Error()))
					res.Error = err.Error()
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
				} else {
					assigned[res.Slug] = struct{}{}
				}
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			if rt.outputJSON {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					if res.Error != "" {
						continue
					}
					if err := writeRow(out, res.Path, res.Title, res.Slug); err != nil {
						return err
					}
					if res.Preview != "" {
						if _, err := fmt.Fprintln(out, res.Preview); err != nil {
							return err
						}
					}
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&knownPath, "known", "", "File of slugs already in use, one per line")
	cmd.Flags().BoolVar(&preview, "preview", false, "Include the body rendered to sanitized HTML")
	return cmd
}

// postSlug reads one post and resolves its slug against known, the reserved
// list and slugs handed out earlier in the run.
func (rt *runtime) postSlug(ctx context.Context, path string, known, assigned knownSlugs, preview bool) (postResult, error) {
	res := postResult{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		return res, err
	}

	p, err := post.Parse(src)
	if err != nil {
		return res, err
	}
	if err := p.Validate(); err != nil {
		return res, err
	}

	s, err := p.ResolveSlug(ctx, rt.resolver(known.existsFunc(p.FrontMatter.Slug, assigned)))
	if err != nil {
		return res, err
	}
	rt.log.DebugContext(ctx, "post slug resolved", slog.String("slug", s))

	if preview {
		if res.Preview, err = p.Preview(); err != nil {
			return res, err
		}
	}
	res.Title, res.Slug = p.Title(), s
	return res, nil
}
