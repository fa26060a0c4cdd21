// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/iotexproject/trie-oracle/trie"
)

// SystemUnderTest runs one command stream against an independently built
// trie and returns its canonical path serialization, one path per slice
// element. Implementations are accessed only through the command stream and
// the path lines; the oracle never couples to their internals.
type SystemUnderTest interface {
	Run(context.Context, []Command) ([]string, error)
}

// TrieSUT drives a trie.Trie implementation in process
type TrieSUT struct {
	NewTrie func() trie.Trie
}

// Run applies the command stream to a fresh trie and serializes it
func (s *TrieSUT) Run(ctx context.Context, cmds []Command) ([]string, error) {
	tr := s.NewTrie()
	if err := tr.Start(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = tr.Stop(ctx) }()

	for _, c := range cmds {
		switch c.Action {
		case ActionAdd:
			if err := tr.Upsert(c.Key, []byte(strconv.FormatUint(c.Value, 10))); err != nil {
				return nil, err
			}
		case ActionRemove:
			if err := tr.Delete(c.Key); err != nil {
				if errors.Cause(err) == trie.ErrNotExist {
					continue // key not inserted yet
				}
				return nil, err
			}
		default:
			return nil, errors.Wrapf(ErrSyntax, "action %q", c.Action)
		}
	}

	return tr.Paths()
}

// BinarySUT spawns an external trie-under-test binary, feeds the command
// stream on its stdin and collects the path lines from its stdout. A
// non-zero exit is reported with the captured stderr diagnostics.
type BinarySUT struct {
	Bin  string
	Args []string
}

// Run executes one round against the external binary
func (s *BinarySUT) Run(ctx context.Context, cmds []Command) ([]string, error) {
	cmd := exec.CommandContext(ctx, s.Bin, s.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stdout pipe")
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start %s", s.Bin)
	}

	var paths []string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stdin.Close()
		w := bufio.NewWriter(stdin)
		for _, c := range cmds {
			if _, err := fmt.Fprintln(w, c.String()); err != nil {
				return errors.Wrap(err, "failed to feed command")
			}
		}
		return errors.Wrap(w.Flush(), "failed to feed command stream")
	})
	g.Go(func() error {
		var err error
		paths, err = readPaths(stdout)
		return err
	})
	pipeErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return nil, errors.Wrapf(err, "trie under test failed: %s", stderr.String())
	}
	if pipeErr != nil {
		return nil, pipeErr
	}

	return paths, nil
}

func readPaths(r io.Reader) ([]string, error) {
	paths := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	return paths, errors.Wrap(scanner.Err(), "failed to read trie under test output")
}
