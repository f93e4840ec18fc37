// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ogr/golomb"
	"github.com/katalvlaran/ogr/triu"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	Order  int
	Strict bool
}

// DecodeResult is the payload of decode.
type DecodeResult struct {
	Order  int   `json:"order" yaml:"order"`
	Marks  []int `json:"marks" yaml:"marks,flow"`
	Length int   `json:"length" yaml:"length"`
	Valid  bool  `json:"valid" yaml:"valid"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode --order <n> [<distance>...]",
		Short: "Rebuild a ruler from solver distances",
		Long: `Rebuild an order-n ruler from solver output. Mark 0 is fixed at 0 and
marks 1..n-1 are the first n-1 distances; the rest of the triangular
encoding is ignored. Distances come from the arguments or, when none are
given, from stdin (whitespace or comma separated).

Without --strict the result is trusted; --strict validates it and exits 1
when the solver output is not a Golomb ruler.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Order, "order", "n", 0, "number of marks to rebuild (required)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "validate the rebuilt ruler")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

func runDecode(rootOpts *RootOptions, opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	log := rootOpts.logger()

	var (
		distances []int
		err       error
	)
	if len(args) > 0 {
		distances, err = parseInts(args)
	} else {
		log.Debug("reading distances from stdin")
		distances, err = triu.ParseDistances(cmd.InOrStdin())
	}
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)

		return WrapExitError(ExitCommandError, "decode", err)
	}

	decode := triu.Decode
	if opts.Strict {
		decode = triu.DecodeStrict
	}
	r, err := decode(distances, opts.Order)
	switch {
	case errors.Is(err, golomb.ErrNotGolombRuler):
		_ = formatter.Error(ErrCodeNotGolomb, err.Error(), distances)

		return WrapExitError(ExitFailure, "decode", err)
	case err != nil:
		_ = formatter.Error(ErrCodeDecode, err.Error(), nil)

		return WrapExitError(ExitCommandError, "decode", err)
	}

	result := DecodeResult{
		Order:  r.Order(),
		Marks:  r.Marks(),
		Length: r.Length(),
	}
	result.Valid = golomb.IsGolombRuler(result.Marks)
	if !result.Valid {
		log.Warn("decoded ruler is not a Golomb ruler", "marks", result.Marks)
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintln(w, joinInts(result.Marks))
	})
}
