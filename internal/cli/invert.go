package cli

import (
	"github.com/spf13/cobra"

	"github.com/homier/stablebimap/codec"
)

func newInvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "invert {file}",
		Short:             "Print a pair document with left and right swapped",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.load(args[0], false)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")

			return codec.Encode(cmd.OutOrStdout(), m.Invert(), codec.Format(output))
		},
	}

	cmd.Flags().StringP("output", "o", string(codec.YAML), "output format (yaml, json)")

	return cmd
}
