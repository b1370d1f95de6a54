package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get {file} (--left value | --right value)",
		Short: "Look a value up from either side",
		Example: `get pairs.yaml --left alice
get pairs.yaml --right 42`,
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.load(args[0], false)
			if err != nil {
				return err
			}

			var (
				value string
				ok    bool
			)
			if cmd.Flags().Changed("left") {
				key, _ := cmd.Flags().GetString("left")
				value, ok = m.GetByLeft(key)
				if !ok {
					return fmt.Errorf("left value %q: %w", key, errNotFound)
				}
			} else {
				key, _ := cmd.Flags().GetString("right")
				value, ok = m.GetByRight(key)
				if !ok {
					return fmt.Errorf("right value %q: %w", key, errNotFound)
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().String("left", "", "left value to look up")
	cmd.Flags().String("right", "", "right value to look up")
	cmd.MarkFlagsMutuallyExclusive("left", "right")
	cmd.MarkFlagsOneRequired("left", "right")

	return cmd
}
