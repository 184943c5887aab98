package cli

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// tierFlag is a pflag.Value restricting --tier to known importance tiers.
type tierFlag struct {
	tier domain.ImportanceTier
}

var _ pflag.Value = (*tierFlag)(nil)

func (f *tierFlag) String() string { return string(f.tier) }
func (f *tierFlag) Type() string   { return "tier" }

func (f *tierFlag) Set(v string) error {
	for _, t := range domain.TierOrder {
		if string(t) == v {
			f.tier = t
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q (expected one of: critical, high, medium, low)", v)
}

func newVocabCmd(app *App) *cobra.Command {
	var tier tierFlag

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the built-in category vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := domain.Catalog()
			if tier.tier != "" {
				var filtered []domain.CategorySpec
				for _, spec := range specs {
					if spec.Tier == tier.tier {
						filtered = append(filtered, spec)
					}
				}
				specs = filtered
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVocab(specs))
			return nil
		},
	}

	cmd.Flags().Var(&tier, "tier", "only show categories of this importance tier")
	return cmd
}
