// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package triepath computes the canonical, deterministic path serialization
// of the PATRICIA trie implied by a set of key/value entries. Keys are
// indexed by nibbles; every leaf of the implied trie yields one path string
// over the alphabet '[', ']', lowercase hex digits and the value's own
// rendering. Two independently built tries are structurally equal exactly
// when their serializations match line by line.
package triepath

// markerKind is the label state of one node of the implied trie
type markerKind uint8

const (
	// markerUnset is the empty label of a non-branching chain node
	markerUnset markerKind = iota
	// markerBranch labels a node with more than one child and no value
	markerBranch
	// markerValue labels a node at which a key terminates
	markerValue
)

// marker is a node label. It is resolved at most once per node: to a value
// marker if a key terminates at the node, or to the generic branch marker
// when a second child run is found. An unresolved marker renders empty, so
// non-branching chains collapse into contiguous digit runs.
type marker struct {
	kind  markerKind
	value []byte
}

func (m marker) render() string {
	switch m.kind {
	case markerBranch:
		return "[]"
	case markerValue:
		return "[" + string(m.value) + "]"
	default:
		return ""
	}
}

// Paths computes the canonical serialization of the entry set. The input is
// not modified; entries are copied, sorted by raw key bytes and rejected on
// duplicate keys. The empty set serializes to the single path "[]".
func Paths(entries []Entry) ([]string, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	if err := SortEntries(sorted); err != nil {
		return nil, err
	}
	return SortedPaths(sorted)
}

// SortedPaths computes the canonical serialization of an already sorted,
// duplicate-free entry set. Unsorted input or duplicate keys are caller
// contract violations and fail fast.
func SortedPaths(entries []Entry) ([]string, error) {
	if err := checkSorted(entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []string{"[]"}, nil
	}
	encoded := make([]nibbleEntry, len(entries))
	for i, e := range entries {
		encoded[i] = nibbleEntry{
			nib:   KeyNibbles(e.Key),
			value: e.Value,
		}
	}
	// the true root is always labeled
	return build(encoded, 0, 0, len(encoded), marker{kind: markerBranch}), nil
}

// nibbleEntry is a sorted entry with its key nibble-encoded
type nibbleEntry struct {
	nib   []byte
	value []byte
}

// build emits the path suffixes of the sub-trie over entries[begin:end] at
// nibble depth index. The range is sorted, so an entry whose key is
// exhausted at this depth is a prefix of everything else in the range and
// can only be the first; it resolves the node label to its value marker.
// Entries are then partitioned into maximal runs sharing the nibble at this
// depth, and each run recurses one digit deeper. The resolved label is part
// of the emitted prefix of every run, ascending-nibble order throughout.
func build(entries []nibbleEntry, index, begin, end int, node marker) []string {
	var paths []string

	if len(entries[begin].nib) == index {
		node = marker{kind: markerValue, value: entries[begin].value}
		begin++
	}

	for i := begin + 1; i < end; i++ {
		if entries[i].nib[index] != entries[begin].nib[index] {
			if node.kind == markerUnset {
				node = marker{kind: markerBranch}
			}
			paths = appendRun(paths, node, entries[begin].nib[index],
				build(entries, index+1, begin, i, marker{}))
			begin = i
		}
	}

	if begin < end {
		paths = appendRun(paths, node, entries[begin].nib[index],
			build(entries, index+1, begin, end, marker{}))
	} else {
		// no child runs, the node itself is a leaf
		paths = append(paths, node.render())
	}

	return paths
}

// appendRun prefixes every suffix of one child run with the node label and
// the run's nibble digit
func appendRun(paths []string, node marker, nibble byte, suffixes []string) []string {
	prefix := node.render() + string(hexDigit(nibble))
	for _, suffix := range suffixes {
		paths = append(paths, prefix+suffix)
	}
	return paths
}
