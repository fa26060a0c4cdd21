// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// triepaths reads keys from stdin, one per line, and prints the canonical
// path serialization of the trie holding them. Each key's value is its
// zero-based line number in decimal.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/iotexproject/trie-oracle/trie/triepath"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var keys [][]byte
	for scanner.Scan() {
		keys = append(keys, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to read keys:", err)
		os.Exit(1)
	}

	paths, err := triepath.Paths(triepath.EntriesFromKeys(keys))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	w := bufio.NewWriter(os.Stdout)
	for _, path := range paths {
		fmt.Fprintln(w, path)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write paths:", err)
		os.Exit(1)
	}
}
