// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ogr/golomb"
)

// ValidationResult is the payload of validate.
type ValidationResult struct {
	Marks     []int `json:"marks" yaml:"marks,flow"`
	Valid     bool  `json:"valid" yaml:"valid"`
	Order     int   `json:"order" yaml:"order"`
	Distances []int `json:"distances" yaml:"distances,flow"` // distinct, ascending
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <mark>...",
		Short: "Check whether marks form a Golomb ruler",
		Long: `Check whether the given marks form a Golomb ruler: all marks
non-negative and every pairwise distance distinct. Exits 1 when they do not.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(rootOpts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	marks, err := parseInts(args)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)

		return WrapExitError(ExitCommandError, "validate", err)
	}

	set := golomb.ComputeDistances(marks)
	distances := make([]int, 0, len(set))
	for d := range set {
		distances = append(distances, d)
	}
	slices.Sort(distances)

	result := ValidationResult{
		Marks:     marks,
		Valid:     golomb.IsGolombRuler(marks),
		Order:     len(marks),
		Distances: distances,
	}
	rootOpts.logger().Debug("validated", "order", result.Order, "valid", result.Valid,
		"distinct", len(distances), "pairs", len(marks)*(len(marks)-1)/2)

	if err = formatter.Success(result, func(w io.Writer) {
		if result.Valid {
			fmt.Fprintf(w, "✓ [%s] is a Golomb ruler of order %d\n", joinInts(marks), result.Order)
		} else {
			fmt.Fprintf(w, "✗ [%s] is not a Golomb ruler\n", joinInts(marks))
		}
		fmt.Fprintf(w, "distances: %s\n", joinInts(distances))
	}); err != nil {
		return err
	}

	if !result.Valid {
		return WrapExitError(ExitFailure, "validate", &golomb.NotGolombRulerError{Sequence: marks})
	}

	return nil
}
