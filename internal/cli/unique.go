package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

type uniqueResult struct {
	Title    string `json:"title"`
	Existing string `json:"existing,omitempty"`
	Slug     string `json:"slug"`
}

func newUniqueCmd(rt *runtime) *cobra.Command {
	var (
		existing  string
		knownPath string
	)

	cmd := &cobra.Command{
		Use:   "unique TITLE",
		Short: "Derive a slug for TITLE, bumping the numeric suffix of --existing when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			result := uniqueResult{Title: title, Existing: existing}

			if knownPath == "" {
				result.Slug = slug.GenerateUnique(title, existing)
			} else {
				known, err := loadKnown(knownPath)
				if err != nil {
					return err
				}
				s, err := rt.resolver(known.existsFunc(existing, nil)).Resolve(cmd.Context(), title, existing)
				if err != nil {
					return fmt.Errorf("resolve %q: %w", title, err)
				}
				result.Slug = s
				rt.log.DebugContext(cmd.Context(), "slug resolved",
					slog.String("title", title),
					slog.String("slug", s),
					slog.Int("known", len(known)),
				)
			}

			if rt.outputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Slug)
			return err
		},
	}

	cmd.Flags().StringVar(&existing, "existing", "", "Slug currently assigned to the item")
	cmd.Flags().StringVar(&knownPath, "known", "", "File of slugs already in use, one per line")
	return cmd
}
