package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check {file}",
		Short: "Load a pair document and report evictions",
		Long: `Load a pair document and report how many pairs were inserted, repeated or
evicted by later pairs. With --strict any eviction is an error.`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			m, report, err := a.load(args[0], strict)
			if err != nil {
				return err
			}

			if report.Evicted > 0 {
				a.log.Warn().Str("file", args[0]).Int("evicted", report.Evicted).Msg("document is not one-to-one")
			}

			stats := m.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"entries: %d\ninserted: %d\nunchanged: %d\nevicted: %d\ncapacity: %d\n",
				m.Len(), report.Inserted, report.Unchanged, report.Evicted, stats.EffectiveCapacity,
			)
			return err
		},
	}

	cmd.Flags().Bool("strict", false, "fail if any pair evicts another one")

	return cmd
}
