// SPDX-License-Identifier: MIT

package triu_test

import (
	"fmt"

	"github.com/katalvlaran/ogr/generator"
	"github.com/katalvlaran/ogr/golomb"
	"github.com/katalvlaran/ogr/triu"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEncode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Export the distances of the order-3 ruler [0 1 3] for a solver.
//	Enumeration is row-major over i<j: d(0,1), d(0,2), d(1,2).
func ExampleEncode() {
	r, err := golomb.New([]int{0, 1, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(triu.Encode(r))
	fmt.Print(triu.EncodePacked(r))
	// Output:
	// [1 3 2]
	// [0 1 3]
	// [1 0 2]
	// [3 2 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Round-trip the improved order-5 ruler through the solver layout.
//	Decode reads only the first n-1 entries: the distances from mark 0.
func ExampleDecode() {
	r, err := generator.Generate(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	flat := triu.Encode(r)
	back, err := triu.Decode(flat, r.Order())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(flat)
	fmt.Println(back)
	// Output:
	// [1 3 7 12 2 6 11 4 9 5]
	// [0 1 3 7 12]
}
