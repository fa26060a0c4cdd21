// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import "fmt"

// Mismatch is one line on which the trie-under-test serialization deviates
// from the oracle's. A line present on only one side leaves the other field
// empty.
type Mismatch struct {
	Line int
	Want string
	Got  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: want %q, got %q", m.Line, m.Want, m.Got)
}

// Compare diffs the trie-under-test output against the oracle paths line by
// line and returns every deviation, nil when both sides agree
func Compare(want, got []string) []Mismatch {
	var mismatches []Mismatch
	n := len(want)
	if len(got) > n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			mismatches = append(mismatches, Mismatch{Line: i, Want: w, Got: g})
		}
	}
	return mismatches
}
