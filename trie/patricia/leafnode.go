// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package patricia

import (
	"bytes"

	"github.com/iotexproject/trie-oracle/trie"
)

// leafNode holds a single key and its value; the key is the full nibble
// sequence from the root
type leafNode struct {
	key   keyType
	value []byte
}

func newLeafNode(key keyType, value []byte) *leafNode {
	return &leafNode{key: key, value: value}
}

func (l *leafNode) search(key keyType, offset int) ([]byte, error) {
	if !bytes.Equal(l.key[offset:], key[offset:]) {
		return nil, trie.ErrNotExist
	}
	return l.value, nil
}

func (l *leafNode) upsert(key keyType, offset int, value []byte) (node, error) {
	_patriciaMtc.WithLabelValues("leafNode.upsert").Inc()
	matched := commonPrefixLength(l.key[offset:], key[offset:])
	if offset+matched == len(key) && len(key) == len(l.key) {
		l.value = value
		return l, nil
	}
	// split at the divergence depth
	bnode := newBranchNode()
	switch {
	case offset+matched == len(l.key):
		// the old leaf's key terminates at the new branch
		bnode.setValue(l.value)
		bnode.setChild(key[offset+matched], newLeafNode(key, value))
	case offset+matched == len(key):
		// the new key terminates at the new branch
		bnode.setValue(value)
		bnode.setChild(l.key[offset+matched], l)
	default:
		bnode.setChild(l.key[offset+matched], l)
		bnode.setChild(key[offset+matched], newLeafNode(key, value))
	}
	if matched == 0 {
		return bnode, nil
	}
	return newExtensionNode(key[offset:offset+matched], bnode), nil
}

func (l *leafNode) delete(key keyType, offset int) (node, error) {
	_patriciaMtc.WithLabelValues("leafNode.delete").Inc()
	if !bytes.Equal(l.key[offset:], key[offset:]) {
		return nil, trie.ErrNotExist
	}
	return nil, nil
}

func (l *leafNode) writePaths(prefix string, offset int, out *[]string) {
	*out = append(*out, prefix+hexDigits(l.key[offset:])+"["+string(l.value)+"]")
}
