package cmd

import (
	"fmt"

	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/selftest"
	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run known-answer and consistency checks, against all curves unless --curve is given",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := ec.SupportedGroups
		if cmd.Flags().Changed("curve") {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			groups = []*ec.Group{g}
		}
		if err := selftest.Run(lggr, groups...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d curves\n", len(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
