// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package patricia implements an in-memory, path-compressed PATRICIA trie
// over arbitrary byte-string keys indexed by nibbles. Keys may be empty and
// may be strict prefixes of one another. Its Paths method emits the same
// canonical serialization as package triepath computes from the bare entry
// set, which makes the two implementations mutually checkable.
package patricia

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/iotexproject/trie-oracle/trie"
	"github.com/iotexproject/trie-oracle/trie/triepath"
)

type patriciaTrie struct {
	mutex sync.RWMutex
	root  *branchNode
	size  int
}

// New creates an empty in-memory PATRICIA trie
func New() trie.Trie {
	return &patriciaTrie{}
}

func (pt *patriciaTrie) Start(_ context.Context) error {
	pt.mutex.Lock()
	defer pt.mutex.Unlock()

	pt.root = newRootBranchNode()
	pt.size = 0

	return nil
}

func (pt *patriciaTrie) Stop(_ context.Context) error {
	return nil
}

func (pt *patriciaTrie) IsEmpty() bool {
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	return pt.size == 0
}

func (pt *patriciaTrie) Size() int {
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	return pt.size
}

func (pt *patriciaTrie) Upsert(key []byte, value []byte) error {
	_patriciaMtc.WithLabelValues("upsert").Inc()
	pt.mutex.Lock()
	defer pt.mutex.Unlock()

	if pt.root == nil {
		return errors.Wrap(trie.ErrInvalidTrie, "trie is not started")
	}
	kt := triepath.KeyNibbles(key)
	_, err := pt.root.search(kt, 0)
	exists := err == nil
	newRoot, err := pt.root.upsert(kt, 0, value)
	if err != nil {
		return err
	}
	bn, ok := newRoot.(*branchNode)
	if !ok {
		panic("unexpected new root")
	}
	pt.root = bn
	if !exists {
		pt.size++
	}

	return nil
}

func (pt *patriciaTrie) Get(key []byte) ([]byte, error) {
	_patriciaMtc.WithLabelValues("get").Inc()
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	if pt.root == nil {
		return nil, errors.Wrap(trie.ErrInvalidTrie, "trie is not started")
	}

	return pt.root.search(triepath.KeyNibbles(key), 0)
}

func (pt *patriciaTrie) Delete(key []byte) error {
	_patriciaMtc.WithLabelValues("delete").Inc()
	pt.mutex.Lock()
	defer pt.mutex.Unlock()

	if pt.root == nil {
		return errors.Wrap(trie.ErrInvalidTrie, "trie is not started")
	}
	kt := triepath.KeyNibbles(key)
	newRoot, err := pt.root.delete(kt, 0)
	if err != nil {
		return errors.Wrapf(err, "key %x does not exist", key)
	}
	bn, ok := newRoot.(*branchNode)
	if !ok {
		panic("unexpected new root")
	}
	pt.root = bn
	pt.size--

	return nil
}

func (pt *patriciaTrie) Paths() ([]string, error) {
	_patriciaMtc.WithLabelValues("paths").Inc()
	pt.mutex.RLock()
	defer pt.mutex.RUnlock()

	if pt.root == nil {
		return nil, errors.Wrap(trie.ErrInvalidTrie, "trie is not started")
	}
	out := make([]string, 0, pt.size)
	pt.root.writePaths("", 0, &out)

	return out, nil
}
