package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/spf13/cobra"
)

var (
	encodeX      string
	encodeY      string
	encodeFormat string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode affine coordinates as a SEC1 point",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := selectedGroup()
		if err != nil {
			return err
		}
		format, err := ec.ParseFormat(encodeFormat)
		if err != nil {
			return err
		}
		x, err := parseInt(encodeX)
		if err != nil {
			return err
		}
		y, err := parseInt(encodeY)
		if err != nil {
			return err
		}

		p, err := ec.NewPoint(g.Curve(), x, y)
		if err != nil {
			return err
		}
		if !p.OnTheCurve() {
			return ec.ErrNotOnCurve
		}
		fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(p.Encode(format)))
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeX, "x", "", "affine x coordinate (decimal, or hex with 0x prefix)")
	encodeCmd.Flags().StringVar(&encodeY, "y", "", "affine y coordinate (decimal, or hex with 0x prefix)")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", ec.Compressed.String(), "output format (uncompressed, compressed, hybrid)")
	_ = encodeCmd.MarkFlagRequired("x")
	_ = encodeCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(encodeCmd)
}
