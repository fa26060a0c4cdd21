// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/iotexproject/trie-oracle/trie/triepath"
)

var (
	// ErrDuplicateAdd indicates an add for a key that is already present
	ErrDuplicateAdd = errors.New("add of an already present key")

	// ErrValueMismatch indicates a remove whose value differs from the one
	// inserted under the key
	ErrValueMismatch = errors.New("remove value does not match inserted value")
)

// State is the harness' own bookkeeping of the key/value set a command
// stream leaves behind. Duplicate adds and removes with a mismatched value
// have no defined trie behavior and fail fast here; a remove of an absent
// key is skipped, as the trie-under-test protocol prescribes.
type State struct {
	entries map[string]uint64
}

// NewState creates empty bookkeeping
func NewState() *State {
	return &State{entries: make(map[string]uint64)}
}

// Apply folds one command into the state
func (s *State) Apply(c Command) error {
	switch c.Action {
	case ActionAdd:
		if _, ok := s.entries[string(c.Key)]; ok {
			return errors.Wrapf(ErrDuplicateAdd, "key %q", c.Key)
		}
		s.entries[string(c.Key)] = c.Value
	case ActionRemove:
		value, ok := s.entries[string(c.Key)]
		if !ok {
			return nil
		}
		if value != c.Value {
			return errors.Wrapf(ErrValueMismatch, "key %q holds %d, remove carries %d", c.Key, value, c.Value)
		}
		delete(s.entries, string(c.Key))
	default:
		return errors.Wrapf(ErrSyntax, "action %q", c.Action)
	}
	return nil
}

// Size returns the number of live entries
func (s *State) Size() int {
	return len(s.entries)
}

// Entries returns the live key/value set, values in their canonical decimal
// rendering
func (s *State) Entries() []triepath.Entry {
	entries := make([]triepath.Entry, 0, len(s.entries))
	for key, value := range s.entries {
		entries = append(entries, triepath.Entry{
			Key:   []byte(key),
			Value: []byte(strconv.FormatUint(value, 10)),
		})
	}
	return entries
}
