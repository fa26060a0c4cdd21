// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package patricia

import (
	"github.com/prometheus/client_golang/prometheus"
)

// _radix is the branch fan-out, one slot per nibble value
const _radix = 16

const _hexDigits = "0123456789abcdef"

var _patriciaMtc = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trie_oracle_patricia_ops",
		Help: "Trie oracle patricia trie operations",
	},
	[]string{"type"},
)

func init() {
	prometheus.MustRegister(_patriciaMtc)
}

type (
	// keyType is a key expanded into its nibble digits, one digit per byte
	keyType []byte

	// node is one node of the trie. The three implementations follow the
	// usual PATRICIA shapes: a branch fans out by one nibble and may hold
	// the value of a key terminating at it, an extension compresses a
	// non-branching digit chain, and a leaf holds the remainder of a single
	// key. Mutating calls return the node that replaces the receiver, or
	// nil when the subtree vanishes.
	node interface {
		search(key keyType, offset int) ([]byte, error)
		upsert(key keyType, offset int, value []byte) (node, error)
		delete(key keyType, offset int) (node, error)
		writePaths(prefix string, offset int, out *[]string)
	}
)

// commonPrefixLength returns the length of the common prefix of two keys
func commonPrefixLength(k1, k2 []byte) int {
	match := 0
	for match < len(k1) && match < len(k2) && k1[match] == k2[match] {
		match++
	}
	return match
}

// hexDigits renders nibble digits as lowercase hex characters
func hexDigits(nibbles []byte) string {
	out := make([]byte, len(nibbles))
	for i, d := range nibbles {
		out[i] = _hexDigits[d&0x0f]
	}
	return string(out)
}
