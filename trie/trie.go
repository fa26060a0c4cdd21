// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package trie defines the interface of a mutable PATRICIA trie over
// arbitrary byte-string keys, together with its canonical path
// serialization. Keys are indexed by 4-bit digits (nibbles); the canonical
// serialization is the ordered list of root-to-leaf path strings defined in
// package triepath, which independent implementations emit to be checked
// for structural equality.
package trie

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidTrie indicates something wrong causing invalid operation
	ErrInvalidTrie = errors.New("invalid trie operation")

	// ErrNotExist indicates entry does not exist
	ErrNotExist = errors.New("not exist in trie")
)

// Trie is the interface of a mutable PATRICIA trie
type Trie interface {
	// Start starts the trie
	Start(context.Context) error
	// Stop stops the trie
	Stop(context.Context) error
	// IsEmpty returns true if the trie holds no entry
	IsEmpty() bool
	// Upsert inserts a new entry or updates an existing one
	Upsert([]byte, []byte) error
	// Get retrieves an existing entry
	Get([]byte) ([]byte, error)
	// Delete deletes an entry
	Delete([]byte) error
	// Size returns the number of entries in the trie
	Size() int
	// Paths returns the canonical DFS path serialization of the trie
	Paths() ([]string, error)
}
