package cmd

import (
	"fmt"

	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a SEC1 point encoding and print its affine coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := selectedGroup()
		if err != nil {
			return err
		}
		p, err := parsePoint(g, args[0])
		if err != nil {
			lggr.Warn("point decoding failed", commontypes.LogFields{"curve": g.Name(), "err": err})
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "curve: %s\n", g.Name())
		if p.IsIdentity() {
			fmt.Fprintln(out, "identity: true")
			return nil
		}
		x, y, err := p.Affine()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "identity: false")
		fmt.Fprintf(out, "x: %s\n", coordinate(g.Curve(), x))
		fmt.Fprintf(out, "y: %s\n", coordinate(g.Curve(), y))
		fmt.Fprintf(out, "compressed: %x\n", p.Encode(ec.Compressed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
