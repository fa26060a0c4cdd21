// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package patricia

import (
	"github.com/iotexproject/trie-oracle/trie"
)

// extensionNode compresses a non-branching chain of nibble digits in front
// of its child, which is always a branch node
type extensionNode struct {
	path  []byte
	child node
}

func newExtensionNode(path []byte, child node) *extensionNode {
	p := make([]byte, len(path))
	copy(p, path)
	return &extensionNode{path: p, child: child}
}

func (e *extensionNode) search(key keyType, offset int) ([]byte, error) {
	matched := commonPrefixLength(e.path, key[offset:])
	if matched != len(e.path) {
		return nil, trie.ErrNotExist
	}
	return e.child.search(key, offset+matched)
}

func (e *extensionNode) upsert(key keyType, offset int, value []byte) (node, error) {
	_patriciaMtc.WithLabelValues("extensionNode.upsert").Inc()
	matched := commonPrefixLength(e.path, key[offset:])
	if matched == len(e.path) {
		newChild, err := e.child.upsert(key, offset+matched, value)
		if err != nil {
			return nil, err
		}
		e.child = newChild
		return e, nil
	}
	// the path diverges, split it around a new branch
	bnode := newBranchNode()
	var truncated node
	if matched+1 == len(e.path) {
		truncated = e.child
	} else {
		truncated = newExtensionNode(e.path[matched+1:], e.child)
	}
	bnode.setChild(e.path[matched], truncated)
	if offset+matched == len(key) {
		bnode.setValue(value)
	} else {
		bnode.setChild(key[offset+matched], newLeafNode(key, value))
	}
	if matched == 0 {
		return bnode, nil
	}
	return newExtensionNode(e.path[:matched], bnode), nil
}

func (e *extensionNode) delete(key keyType, offset int) (node, error) {
	_patriciaMtc.WithLabelValues("extensionNode.delete").Inc()
	matched := commonPrefixLength(e.path, key[offset:])
	if matched != len(e.path) {
		return nil, trie.ErrNotExist
	}
	newChild, err := e.child.delete(key, offset+matched)
	if err != nil {
		return nil, err
	}
	if newChild == nil {
		return nil, nil
	}
	switch n := newChild.(type) {
	case *extensionNode:
		return n.prependPath(e.path), nil
	case *leafNode:
		return n, nil
	default:
		e.child = newChild
		return e, nil
	}
}

// prependPath extends the compressed chain at its front
func (e *extensionNode) prependPath(path []byte) *extensionNode {
	merged := make([]byte, 0, len(path)+len(e.path))
	merged = append(merged, path...)
	merged = append(merged, e.path...)
	e.path = merged
	return e
}

func (e *extensionNode) writePaths(prefix string, offset int, out *[]string) {
	e.child.writePaths(prefix+hexDigits(e.path), offset+len(e.path), out)
}
