// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package patricia

import (
	"github.com/iotexproject/trie-oracle/trie"
)

// branchNode fans out by one nibble digit and may hold the value of the key
// terminating exactly at it. A non-root branch keeps the canonical
// invariant: at least two children, or a value and at least one child.
type branchNode struct {
	children    [_radix]node
	numChildren int
	value       []byte
	hasValue    bool
	isRoot      bool
}

func newBranchNode() *branchNode {
	return &branchNode{}
}

func newRootBranchNode() *branchNode {
	return &branchNode{isRoot: true}
}

func (b *branchNode) setValue(value []byte) {
	b.value = value
	b.hasValue = true
}

func (b *branchNode) setChild(digit byte, child node) {
	if b.children[digit] == nil {
		b.numChildren++
	}
	b.children[digit] = child
}

func (b *branchNode) removeChild(digit byte) {
	if b.children[digit] != nil {
		b.numChildren--
	}
	b.children[digit] = nil
}

func (b *branchNode) search(key keyType, offset int) ([]byte, error) {
	if offset == len(key) {
		if !b.hasValue {
			return nil, trie.ErrNotExist
		}
		return b.value, nil
	}
	child := b.children[key[offset]]
	if child == nil {
		return nil, trie.ErrNotExist
	}
	return child.search(key, offset+1)
}

func (b *branchNode) upsert(key keyType, offset int, value []byte) (node, error) {
	_patriciaMtc.WithLabelValues("branchNode.upsert").Inc()
	if offset == len(key) {
		b.setValue(value)
		return b, nil
	}
	digit := key[offset]
	child := b.children[digit]
	if child == nil {
		b.setChild(digit, newLeafNode(key, value))
		return b, nil
	}
	newChild, err := child.upsert(key, offset+1, value)
	if err != nil {
		return nil, err
	}
	b.children[digit] = newChild
	return b, nil
}

func (b *branchNode) delete(key keyType, offset int) (node, error) {
	_patriciaMtc.WithLabelValues("branchNode.delete").Inc()
	if offset == len(key) {
		if !b.hasValue {
			return nil, trie.ErrNotExist
		}
		b.value = nil
		b.hasValue = false
		return b.collapse(key, offset)
	}
	digit := key[offset]
	child := b.children[digit]
	if child == nil {
		return nil, trie.ErrNotExist
	}
	newChild, err := child.delete(key, offset+1)
	if err != nil {
		return nil, err
	}
	if newChild != nil {
		b.children[digit] = newChild
		return b, nil
	}
	b.removeChild(digit)
	return b.collapse(key, offset)
}

// collapse restores the canonical invariant after a value or child was
// removed at this node
func (b *branchNode) collapse(key keyType, offset int) (node, error) {
	if b.isRoot {
		return b, nil
	}
	if b.hasValue {
		if b.numChildren == 0 {
			// only the terminating value is left, the node becomes a leaf
			prefix := make(keyType, offset)
			copy(prefix, key[:offset])
			return newLeafNode(prefix, b.value), nil
		}
		return b, nil
	}
	switch b.numChildren {
	case 0:
		panic("branch has no child and no value after deleting")
	case 1:
		// the orphan child merges upward
		var (
			digit  byte
			orphan node
		)
		for d := 0; d < _radix; d++ {
			if b.children[d] != nil {
				digit = byte(d)
				orphan = b.children[d]
				break
			}
		}
		switch n := orphan.(type) {
		case *extensionNode:
			return n.prependPath([]byte{digit}), nil
		case *leafNode:
			return n, nil
		default:
			return newExtensionNode([]byte{digit}, orphan), nil
		}
	default:
		return b, nil
	}
}

func (b *branchNode) writePaths(prefix string, offset int, out *[]string) {
	label := "[]"
	if b.hasValue {
		label = "[" + string(b.value) + "]"
	}
	prefix += label
	if b.numChildren == 0 {
		// the root of an empty or single-value trie
		*out = append(*out, prefix)
		return
	}
	for d := 0; d < _radix; d++ {
		if child := b.children[d]; child != nil {
			child.writePaths(prefix+string(_hexDigits[d]), offset+1, out)
		}
	}
}
