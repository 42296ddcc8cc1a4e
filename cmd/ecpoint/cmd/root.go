package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel     string
	logFormat    string
	curveName    string
	printMetrics bool

	lggr     *logger.Logger
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:           "ecpoint",
	Short:         "Elliptic curve point arithmetic over the NIST and secp256k1 prime fields",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		lggr, err = logger.NewLogger(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}

		registry = prometheus.NewRegistry()
		return ec.RegisterMetrics(registry)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !printMetrics {
			return nil
		}
		families, err := registry.Gather()
		if err != nil {
			return err
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
				return err
			}
		}
		return nil
	},
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")
	rootCmd.PersistentFlags().StringVar(&curveName, "curve", ec.P256.Name(), "curve name, one of "+strings.Join(groupNames(), ", "))
	rootCmd.PersistentFlags().BoolVar(&printMetrics, "print-metrics", false, "write the collected metrics to stderr on exit")
}

func groupNames() []string {
	names := make([]string, len(ec.SupportedGroups))
	for i, g := range ec.SupportedGroups {
		names[i] = g.Name()
	}
	return names
}

func selectedGroup() (*ec.Group, error) {
	g := ec.GroupByName(curveName)
	if g == nil {
		return nil, fmt.Errorf("unknown curve %q, expected one of %s", curveName, strings.Join(groupNames(), ", "))
	}
	return g, nil
}
