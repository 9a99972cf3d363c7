package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

func newExtractCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "extract SLUG...",
		Short: "Strip the numeric suffix from each slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bases := make(map[string]string, len(args))
			for _, s := range args {
				bases[s] = slug.ExtractTitle(s)
			}
			if rt.outputJSON {
				return writeJSON(cmd.OutOrStdout(), bases)
			}
			for _, s := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), bases[s]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
