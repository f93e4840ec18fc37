// SPDX-License-Identifier: MIT

package triu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseDistances reads integers separated by whitespace or commas.
// Surrounding brackets are tolerated so "[1 3 2]" and "1,3,2" parse alike.
// Lines whose first non-space character is '#' are skipped.
func ParseDistances(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return unicode.IsSpace(c) || c == ',' || c == '[' || c == ']'
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrParse, line, f)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("triu: read distances: %w", err)
	}

	return out, nil
}
