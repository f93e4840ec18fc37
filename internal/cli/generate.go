// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ogr/generator"
	"github.com/katalvlaran/ogr/golomb"
	"github.com/katalvlaran/ogr/triu"
)

// maxMissingLength bounds the ruler length for which generate lists the
// missing distances; the scan is linear in the length.
const maxMissingLength = 1 << 16

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Algorithm      string
	SkipValidation bool
}

// GenerateResult is the payload of a successful generate.
type GenerateResult struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Order     int    `json:"order" yaml:"order"`
	Length    int    `json:"length" yaml:"length"`
	Marks     []int  `json:"marks" yaml:"marks,flow"`
	Triu      []int  `json:"triu" yaml:"triu,flow"`
	Missing   []int  `json:"missing" yaml:"missing,flow"`
	// MissingSkipped is set when Length exceeds maxMissingLength and
	// Missing was not computed.
	MissingSkipped bool `json:"missing_skipped,omitempty" yaml:"missing_skipped,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <order>",
		Short: "Generate a Golomb ruler with the given number of marks",
		Long: `Generate a Golomb ruler of the given order.

  naive     doubling recurrence 0, 1, 3, 7, 15, ... (exponential length)
  improved  greedy first-fit extension (default, much shorter)

The output lists the marks, the upper-triangular distance encoding and the
distances in 1..length that the ruler cannot measure. The missing list is
skipped for rulers longer than 65536.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algo", "a", "improved", "construction (naive|improved)")
	cmd.Flags().BoolVar(&opts.SkipValidation, "skip-validation", false, "trust the generated marks without re-checking them")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, orderArg string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	log := rootOpts.logger()

	order, err := strconv.Atoi(orderArg)
	if err != nil {
		msg := fmt.Sprintf("order %q is not an integer", orderArg)
		_ = formatter.Error(ErrCodeInvalidInput, msg, nil)

		return NewExitError(ExitCommandError, msg)
	}
	algo, err := generator.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidInput, err.Error(), nil)

		return WrapExitError(ExitCommandError, "generate", err)
	}

	genOpts := []generator.Option{
		generator.WithAlgorithm(algo),
		generator.WithOnMark(func(k, mark int) {
			log.Debug("mark accepted", "algorithm", algo.String(), "order", k, "mark", mark)
		}),
	}
	if opts.SkipValidation {
		genOpts = append(genOpts, generator.WithSkipValidation())
	}

	r, err := generator.Generate(order, genOpts...)
	if err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, golomb.ErrInvalidOrder) || errors.Is(err, generator.ErrOrderTooLarge) {
			code = ErrCodeInvalidInput
		}
		_ = formatter.Error(code, err.Error(), nil)

		return WrapExitError(ExitCommandError, "generate", err)
	}
	log.Debug("ruler generated", "algorithm", algo.String(), "order", r.Order(), "length", r.Length())

	result := GenerateResult{
		Algorithm: algo.String(),
		Order:     r.Order(),
		Length:    r.Length(),
		Marks:     r.Marks(),
		Triu:      triu.Encode(r),
	}
	if result.Length > maxMissingLength {
		result.MissingSkipped = true
		log.Warn("missing distances skipped", "length", result.Length, "limit", maxMissingLength)
	} else {
		result.Missing = r.MissingDistances()
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "algorithm: %s\n", result.Algorithm)
		fmt.Fprintf(w, "order:     %d\n", result.Order)
		fmt.Fprintf(w, "length:    %d\n", result.Length)
		fmt.Fprintf(w, "marks:     %s\n", joinInts(result.Marks))
		fmt.Fprintf(w, "triu:      %s\n", joinInts(result.Triu))
		if result.MissingSkipped {
			fmt.Fprintf(w, "missing:   skipped (length > %d)\n", maxMissingLength)
		} else {
			fmt.Fprintf(w, "missing:   %s\n", joinInts(result.Missing))
		}
	})
}
