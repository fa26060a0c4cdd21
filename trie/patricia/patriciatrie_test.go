// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package patricia

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/trie-oracle/trie"
	"github.com/iotexproject/trie-oracle/trie/triepath"
)

var (
	ham = []byte("ham")
	car = []byte("car")
	cat = []byte("cat")
	egg = []byte("egg")
	dog = []byte("dog")

	testV = [5][]byte{
		[]byte("0"), []byte("1"), []byte("2"), []byte("3"), []byte("4"),
	}
)

func TestEmptyTrie(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))
	defer func() {
		require.NoError(tr.Stop(context.Background()))
	}()
	require.True(tr.IsEmpty())
	require.Zero(tr.Size())
	paths, err := tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[]"}, paths)
}

func TestNotStarted(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.Equal(trie.ErrInvalidTrie, errors.Cause(tr.Upsert(cat, testV[0])))
	_, err := tr.Get(cat)
	require.Equal(trie.ErrInvalidTrie, errors.Cause(err))
	require.Equal(trie.ErrInvalidTrie, errors.Cause(tr.Delete(cat)))
	_, err = tr.Paths()
	require.Equal(trie.ErrInvalidTrie, errors.Cause(err))
}

func TestUpsertGetDelete(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))

	require.NoError(tr.Upsert(cat, testV[2]))
	v, err := tr.Get(cat)
	require.NoError(err)
	require.Equal(testV[2], v)
	require.Equal(1, tr.Size())

	require.NoError(tr.Upsert(car, testV[1]))
	require.NoError(tr.Upsert(ham, testV[0]))
	require.Equal(3, tr.Size())

	// update does not grow the trie
	require.NoError(tr.Upsert(cat, testV[4]))
	require.Equal(3, tr.Size())
	v, err = tr.Get(cat)
	require.NoError(err)
	require.Equal(testV[4], v)

	_, err = tr.Get(dog)
	require.Equal(trie.ErrNotExist, errors.Cause(err))
	require.Equal(trie.ErrNotExist, errors.Cause(tr.Delete(dog)))

	require.NoError(tr.Delete(cat))
	_, err = tr.Get(cat)
	require.Equal(trie.ErrNotExist, errors.Cause(err))
	require.Equal(2, tr.Size())
	v, err = tr.Get(car)
	require.NoError(err)
	require.Equal(testV[1], v)

	require.NoError(tr.Delete(car))
	require.NoError(tr.Delete(ham))
	require.True(tr.IsEmpty())
	paths, err := tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[]"}, paths)
}

func TestEmptyAndPrefixKeys(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))

	require.NoError(tr.Upsert(nil, testV[0]))
	require.False(tr.IsEmpty())
	v, err := tr.Get([]byte{})
	require.NoError(err)
	require.Equal(testV[0], v)

	paths, err := tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[0]"}, paths)

	require.NoError(tr.Upsert([]byte("a"), testV[1]))
	paths, err = tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[0]61[1]"}, paths)

	require.NoError(tr.Upsert([]byte("ab"), testV[2]))
	require.NoError(tr.Upsert([]byte("abc"), testV[3]))
	require.Equal(4, tr.Size())
	v, err = tr.Get([]byte("ab"))
	require.NoError(err)
	require.Equal(testV[2], v)

	// deleting a prefix key keeps its extensions intact
	require.NoError(tr.Delete([]byte("ab")))
	_, err = tr.Get([]byte("ab"))
	require.Equal(trie.ErrNotExist, errors.Cause(err))
	v, err = tr.Get([]byte("abc"))
	require.NoError(err)
	require.Equal(testV[3], v)

	require.NoError(tr.Delete(nil))
	_, err = tr.Get(nil)
	require.Equal(trie.ErrNotExist, errors.Cause(err))
	v, err = tr.Get([]byte("a"))
	require.NoError(err)
	require.Equal(testV[1], v)
}

func TestBranchingPaths(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))
	require.NoError(tr.Upsert([]byte("a"), testV[0]))
	require.NoError(tr.Upsert([]byte("b"), testV[1]))

	paths, err := tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[]6[]1[0]", "[]6[]2[1]"}, paths)

	// deleting one sibling collapses the branch again
	require.NoError(tr.Delete([]byte("b")))
	paths, err = tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[]61[0]"}, paths)
}

// oraclePaths computes the expected serialization for the live entry set
func oraclePaths(t *testing.T, entries map[string]string) []string {
	t.Helper()
	es := make([]triepath.Entry, 0, len(entries))
	for k, v := range entries {
		es = append(es, triepath.Entry{Key: []byte(k), Value: []byte(v)})
	}
	paths, err := triepath.Paths(es)
	require.NoError(t, err)
	return paths
}

func TestAgainstOracle(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))

	r := rand.New(rand.NewSource(20220529))
	alphabet := []byte("abcdefgh")
	randKey := func() []byte {
		key := make([]byte, r.Intn(6))
		for i := range key {
			key[i] = alphabet[r.Intn(len(alphabet))]
		}
		return key
	}

	live := make(map[string]string)
	for i := 0; i < 2000; i++ {
		key := randKey()
		if _, ok := live[string(key)]; ok && r.Intn(2) == 0 {
			require.NoError(tr.Delete(key))
			delete(live, string(key))
		} else {
			value := strconv.Itoa(i)
			require.NoError(tr.Upsert(key, []byte(value)))
			live[string(key)] = value
		}
		if i%100 == 0 {
			got, err := tr.Paths()
			require.NoError(err)
			require.Equal(oraclePaths(t, live), got)
			require.Equal(len(live), tr.Size())
		}
	}

	// drain and keep checking the structure on the way down
	for key := range live {
		require.NoError(tr.Delete([]byte(key)))
		delete(live, key)
		if len(live)%50 == 0 {
			got, err := tr.Paths()
			require.NoError(err)
			require.Equal(oraclePaths(t, live), got)
		}
	}
	require.True(tr.IsEmpty())
}

func TestDeleteReshapesExtensions(t *testing.T) {
	require := require.New(t)

	tr := New()
	require.NoError(tr.Start(context.Background()))

	// shared prefix "ca" builds an extension over a branch
	require.NoError(tr.Upsert(cat, testV[2]))
	require.NoError(tr.Upsert(car, testV[1]))
	require.NoError(tr.Upsert(egg, testV[4]))

	want := oraclePaths(t, map[string]string{
		"cat": "2", "car": "1", "egg": "4",
	})
	got, err := tr.Paths()
	require.NoError(err)
	require.Equal(want, got)

	// removing "car" merges the extension chain back together
	require.NoError(tr.Delete(car))
	want = oraclePaths(t, map[string]string{"cat": "2", "egg": "4"})
	got, err = tr.Paths()
	require.NoError(err)
	require.Equal(want, got)

	require.NoError(tr.Delete(egg))
	got, err = tr.Paths()
	require.NoError(err)
	require.Equal([]string{"[]636174[2]"}, got)
}
