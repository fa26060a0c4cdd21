// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotexproject/trie-oracle/trie/patricia"
)

func TestTrieSUT(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sut := &TrieSUT{NewTrie: patricia.New}
	paths, err := sut.Run(ctx, []Command{
		{Action: ActionAdd, Value: 0, Key: []byte("a")},
		{Action: ActionAdd, Value: 1, Key: []byte("b")},
		{Action: ActionAdd, Value: 2, Key: []byte("c")},
		{Action: ActionRemove, Value: 2, Key: []byte("c")},
	})
	require.NoError(err)
	require.Equal([]string{"[]6[]1[0]", "[]6[]2[1]"}, paths)
}

func TestTrieSUTSkipsAbsentRemove(t *testing.T) {
	require := require.New(t)

	sut := &TrieSUT{NewTrie: patricia.New}
	paths, err := sut.Run(context.Background(), []Command{
		{Action: ActionRemove, Value: 0, Key: []byte("missing")},
		{Action: ActionAdd, Value: 0, Key: []byte("a")},
	})
	require.NoError(err)
	require.Equal([]string{"[]61[0]"}, paths)
}

func TestTrieSUTEmptyStream(t *testing.T) {
	require := require.New(t)

	sut := &TrieSUT{NewTrie: patricia.New}
	paths, err := sut.Run(context.Background(), nil)
	require.NoError(err)
	require.Equal([]string{"[]"}, paths)
}

func TestBinarySUTMissingBinary(t *testing.T) {
	require := require.New(t)

	sut := &BinarySUT{Bin: "/nonexistent/trie-under-test"}
	_, err := sut.Run(context.Background(), []Command{
		{Action: ActionAdd, Value: 0, Key: []byte("a")},
	})
	require.Error(err)
}
