package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
	"github.com/anishsharma21/cassius-frontend-sub001/pkg/validator"
)

var errInvalidSlugs = errors.New("invalid slugs found")

type checkResult struct {
	Slug     string   `json:"slug"`
	Errors   []string `json:"errors,omitempty"`
	Valid    bool     `json:"valid"`
	Reserved bool     `json:"reserved,omitempty"`
}

func newCheckCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check SLUG...",
		Short: "Validate slugs; exits non-zero if any is malformed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rt.resolver(nil)

			results := make([]checkResult, 0, len(args))
			invalid := 0
			for _, s := range args {
				res := checkResult{Slug: s, Valid: true, Reserved: r.IsReserved(s)}
				err := validator.Apply(
					validator.RequiredString("slug", s),
					slug.Rule("slug", s),
				)
				if ve := validator.ExtractValidationErrors(err); ve != nil {
					res.Valid = false
					res.Errors = ve.Get("slug")
					invalid++
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
					status := "ok"
					switch {
					case !res.Valid:
						status = "invalid"
					case res.Reserved:
						status = "reserved"
					}
					if err := writeRow(out, status, res.Slug, strings.Join(res.Errors, "; ")); err != nil {
						return err
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidSlugs, invalid, len(args))
			}
			return nil
		},
	}
}
