package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/spf13/cobra"
)

var (
	mulScalar string
	mulSeed   string
	mulPoint  string
	mulFormat string
)

var mulCmd = &cobra.Command{
	Use:   "mul",
	Short: "Multiply a point, or the generator, by a scalar",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := selectedGroup()
		if err != nil {
			return err
		}
		format, err := ec.ParseFormat(mulFormat)
		if err != nil {
			return err
		}
		var k gfp.Scalar
		if mulSeed != "" {
			k, err = seedScalar(g, mulSeed)
		} else {
			k, err = parseScalar(g, mulScalar)
		}
		if err != nil {
			return err
		}

		var result *ec.Point
		if mulPoint == "" {
			result = g.ScalarBaseMult(k)
		} else {
			p, err := parsePoint(g, mulPoint)
			if err != nil {
				return err
			}
			result = g.ScalarMult(k, p)
		}
		lggr.Debug("scalar multiplication done", commontypes.LogFields{
			"curve":    g.Name(),
			"base":     mulPoint == "",
			"identity": result.IsIdentity(),
		})
		fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(result.Encode(format)))
		return nil
	},
}

func init() {
	mulCmd.Flags().StringVar(&mulScalar, "scalar", "", "scalar (decimal, or hex with 0x prefix), reduced modulo the group order")
	mulCmd.Flags().StringVar(&mulSeed, "seed", "", "derive the scalar from this string instead of --scalar")
	mulCmd.Flags().StringVar(&mulPoint, "point", "", "SEC1 encoded point in hex, the generator if empty")
	mulCmd.Flags().StringVar(&mulFormat, "format", ec.Compressed.String(), "output format (uncompressed, compressed, hybrid)")
	mulCmd.MarkFlagsOneRequired("scalar", "seed")
	mulCmd.MarkFlagsMutuallyExclusive("scalar", "seed")
	rootCmd.AddCommand(mulCmd)
}
