// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// triedut is the in-repo trie-under-test. It reads add and remove commands
// from stdin, applies them to the patricia trie and prints the trie's
// canonical path serialization. Diagnostics go to stderr and any failure
// exits non-zero, so the structural tester can tell a broken run from a
// structural mismatch.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/iotexproject/trie-oracle/harness"
	"github.com/iotexproject/trie-oracle/trie"
	"github.com/iotexproject/trie-oracle/trie/patricia"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	tr := patricia.New()
	if err := tr.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = tr.Stop(ctx) }()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		c, err := harness.ParseCommand(scanner.Text())
		if err != nil {
			return errors.Wrapf(err, "stdin line %d", line)
		}
		switch c.Action {
		case harness.ActionAdd:
			err = tr.Upsert(c.Key, []byte(strconv.FormatUint(c.Value, 10)))
		case harness.ActionRemove:
			err = tr.Delete(c.Key)
			if errors.Cause(err) == trie.ErrNotExist {
				err = nil
			}
		}
		if err != nil {
			return errors.Wrapf(err, "stdin line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read commands")
	}

	paths, err := tr.Paths()
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	for _, path := range paths {
		fmt.Fprintln(w, path)
	}
	return errors.Wrap(w.Flush(), "failed to write paths")
}
