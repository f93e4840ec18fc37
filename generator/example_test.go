// SPDX-License-Identifier: MIT

package generator_test

import (
	"fmt"

	"github.com/katalvlaran/ogr/generator"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build order-8 rulers with both constructions and compare lengths.
//	The naive ruler doubles every step; the greedy one stays compact.
func ExampleGenerate() {
	for _, algo := range []generator.Algorithm{generator.AlgoNaive, generator.AlgoImproved} {
		r, err := generator.Generate(8, generator.WithAlgorithm(algo))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-8s length=%-3d %v\n", algo, r.Length(), r)
	}
	// Output:
	// naive    length=127 [0 1 3 7 15 31 63 127]
	// improved length=44  [0 1 3 7 12 20 30 44]
}

// ExampleCompare prints the first rows of the length table.
func ExampleCompare() {
	rows, err := generator.Compare(6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range rows {
		fmt.Println(row.Order, row.NaiveLength, row.ImprovedLength)
	}
	// Output:
	// 1 0 0
	// 2 1 1
	// 3 3 3
	// 4 7 7
	// 5 15 12
	// 6 31 20
}
