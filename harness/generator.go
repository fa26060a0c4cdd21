// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DefaultAlphabet is the alphanumeric alphabet of the structural test
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces random keys for structural test rounds. It is seeded
// explicitly so every round is reproducible from its logged seed.
type Generator struct {
	alphabet []byte
	minLen   int
	maxLen   int
	rnd      *rand.Rand
}

// NewGenerator creates a seeded key generator
func NewGenerator(alphabet string, minLen, maxLen int, seed int64) (*Generator, error) {
	if len(alphabet) == 0 {
		return nil, errors.New("empty alphabet")
	}
	if minLen < 0 || maxLen < minLen {
		return nil, errors.Errorf("invalid key length bounds [%d, %d]", minLen, maxLen)
	}
	return &Generator{
		alphabet: []byte(alphabet),
		minLen:   minLen,
		maxLen:   maxLen,
		rnd:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Key returns one random key within the length bounds
func (g *Generator) Key() []byte {
	key := make([]byte, g.minLen+g.rnd.Intn(g.maxLen-g.minLen+1))
	for i := range key {
		key[i] = g.alphabet[g.rnd.Intn(len(g.alphabet))]
	}
	return key
}

// DistinctKeys returns n pairwise distinct random keys. It fails if the key
// space is too small to yield n distinct keys within a bounded number of
// draws.
func (g *Generator) DistinctKeys(n int) ([][]byte, error) {
	keys := make([][]byte, 0, n)
	seen := make(map[string]struct{}, n)
	for attempts := 0; len(keys) < n; attempts++ {
		if attempts > 100*n+100 {
			return nil, errors.Errorf("cannot draw %d distinct keys from alphabet size %d, lengths [%d, %d]",
				n, len(g.alphabet), g.minLen, g.maxLen)
		}
		key := g.Key()
		if _, ok := seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}

// Shuffle permutes a command stream in place
func (g *Generator) Shuffle(cmds []Command) {
	g.rnd.Shuffle(len(cmds), func(i, j int) {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	})
}
