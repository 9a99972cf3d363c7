package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/sanitizer"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

type makeResult struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func newMakeCmd(rt *runtime) *cobra.Command {
	var (
		fold      bool
		stripHTML bool
	)

	cmd := &cobra.Command{
		Use:   "make [TITLE...]",
		Short: "Print the slug of each title (reads stdin lines when no titles are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			titles := args
			if len(titles) == 0 {
				var err error
				if titles, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("fold") {
				fold = rt.cfg.Fold
			}

			results := make([]makeResult, 0, len(titles))
			for _, title := range titles {
				in := title
				if stripHTML {
					in = sanitizer.PlainText(in)
				}
				if fold {
					in = slug.Fold(in)
				}
				results = append(results, makeResult{Title: title, Slug: slug.Make(in)})
			}

			out := cmd.OutOrStdout()
			if rt.outputJSON {
				return writeJSON(out, results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintln(out, r.Slug); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "Transliterate accented Latin letters before slugging (default from SLUG_FOLD)")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML markup from titles before slugging")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return lines, nil
}
