// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ogr/generator"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	var maxOrder int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Tabulate naive vs improved ruler lengths",
		Long: `Print the length of the naive and the improved ruler for every order
from 1 to --max-order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, maxOrder, cmd)
		},
	}

	cmd.Flags().IntVar(&maxOrder, "max-order", 20, "largest order to compare")

	return cmd
}

func runCompare(rootOpts *RootOptions, maxOrder int, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	rows, err := generator.Compare(maxOrder)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)

		return WrapExitError(ExitCommandError, "compare", err)
	}
	rootOpts.logger().Debug("compared", "orders", len(rows))

	return formatter.Success(rows, func(w io.Writer) {
		fmt.Fprintf(w, "%5s  %12s  %8s\n", "order", "naive", "improved")
		for _, row := range rows {
			fmt.Fprintf(w, "%5d  %12d  %8d\n", row.Order, row.NaiveLength, row.ImprovedLength)
		}
	})
}
