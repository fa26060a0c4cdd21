// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Action is one verb of the line-oriented command protocol
type Action byte

const (
	// ActionAdd inserts key -> value
	ActionAdd Action = 'A'
	// ActionRemove removes a previously inserted key; the value is carried
	// for symmetry and must match the one inserted
	ActionRemove Action = 'R'
)

// ErrSyntax indicates a malformed command line
var ErrSyntax = errors.New("command syntax error")

var _commandRegexp = regexp.MustCompile(`^[ \t]*([AR])[ \t]+(\d+)[ \t]+([^ \t]*)$`)

// Command is one add or remove instruction of the trie-under-test protocol
type Command struct {
	Action Action
	Value  uint64
	Key    []byte
}

// String renders the command as one protocol line, without the newline
func (c Command) String() string {
	return fmt.Sprintf("%c %d %s", c.Action, c.Value, c.Key)
}

// ParseCommand parses one protocol line
func ParseCommand(line string) (Command, error) {
	m := _commandRegexp.FindStringSubmatch(line)
	if m == nil {
		return Command{}, errors.Wrapf(ErrSyntax, "line %q", line)
	}
	value, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Command{}, errors.Wrapf(ErrSyntax, "value in line %q", line)
	}
	return Command{
		Action: Action(m[1][0]),
		Value:  value,
		Key:    []byte(m[3]),
	}, nil
}
