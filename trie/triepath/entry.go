// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package triepath

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateKey indicates two entries share one key
	ErrDuplicateKey = errors.New("duplicate key in entries")

	// ErrUnsortedEntries indicates entries are not in ascending key order
	ErrUnsortedEntries = errors.New("entries not in ascending key order")
)

// Entry is one key/value pair of a computation. The key is an arbitrary
// byte string, possibly empty; the value is its canonical textual rendering
// and is emitted verbatim inside the value marker of a path.
type Entry struct {
	Key   []byte
	Value []byte
}

// SortEntries orders entries in place, ascending by raw key bytes, and
// rejects duplicate keys. A strict prefix sorts before any key it prefixes.
func SortEntries(entries []Entry) error {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Key, entries[j].Key) < 0
	})
	for i := 1; i < len(entries); i++ {
		if bytes.Equal(entries[i-1].Key, entries[i].Key) {
			return errors.Wrapf(ErrDuplicateKey, "key %x", entries[i].Key)
		}
	}
	return nil
}

// checkSorted verifies the caller contract of SortedPaths
func checkSorted(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		switch bytes.Compare(entries[i-1].Key, entries[i].Key) {
		case 0:
			return errors.Wrapf(ErrDuplicateKey, "key %x", entries[i].Key)
		case 1:
			return errors.Wrapf(ErrUnsortedEntries, "key %x after %x", entries[i].Key, entries[i-1].Key)
		}
	}
	return nil
}

// EntriesFromKeys builds entries from bare keys, using each key's ordinal
// position as its value
func EntriesFromKeys(keys [][]byte) []Entry {
	entries := make([]Entry, len(keys))
	for i, key := range keys {
		entries[i] = Entry{
			Key:   key,
			Value: []byte(strconv.Itoa(i)),
		}
	}
	return entries
}
