// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ogr/golomb"
	"github.com/katalvlaran/ogr/triu"
)

// EncodeResult is the payload of encode.
type EncodeResult struct {
	Order     int   `json:"order" yaml:"order"`
	Size      int   `json:"size" yaml:"size"`
	Distances []int `json:"distances" yaml:"distances,flow"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	var matrix bool

	cmd := &cobra.Command{
		Use:   "encode <mark>...",
		Short: "Print the upper-triangular distance encoding of a ruler",
		Long: `Print d(i,j) for every mark pair i<j in row-major order, the layout
handed to external solvers. The marks are validated first.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args, matrix, cmd)
		},
	}

	cmd.Flags().BoolVar(&matrix, "matrix", false, "also print the full symmetric distance matrix (text format)")

	return cmd
}

func runEncode(rootOpts *RootOptions, args []string, matrix bool, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	marks, err := parseInts(args)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)

		return WrapExitError(ExitCommandError, "encode", err)
	}
	r, err := golomb.New(marks)
	if err != nil {
		_ = formatter.Error(ErrCodeNotGolomb, err.Error(), marks)

		return WrapExitError(ExitFailure, "encode", err)
	}

	packed := triu.EncodePacked(r)
	result := EncodeResult{Order: r.Order(), Size: packed.Len(), Distances: packed.Data()}
	rootOpts.logger().Debug("encoded", "order", result.Order, "size", result.Size)

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintln(w, joinInts(result.Distances))
		if matrix {
			fmt.Fprint(w, packed)
		}
	})
}
