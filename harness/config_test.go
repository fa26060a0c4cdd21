// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig("")
	require.NoError(err)
	require.Equal(Default.Rounds, cfg.Rounds)
	require.Equal(Default.KeyCount, cfg.KeyCount)
	require.Equal(Default.Alphabet, cfg.Alphabet)
	require.Empty(cfg.SUT.Binary)
}

func TestNewConfigFileOverride(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte(`
rounds: 3
keyCount: 7
seed: 42
sut:
  binary: ./triedut
  args: ["-v"]
`), 0600))

	cfg, err := NewConfig(path)
	require.NoError(err)
	require.Equal(3, cfg.Rounds)
	require.Equal(7, cfg.KeyCount)
	require.Equal(int64(42), cfg.Seed)
	require.Equal("./triedut", cfg.SUT.Binary)
	require.Equal([]string{"-v"}, cfg.SUT.Args)
	// untouched fields keep their defaults
	require.Equal(Default.ChurnCount, cfg.ChurnCount)
	require.Equal(Default.Alphabet, cfg.Alphabet)
}

func TestNewConfigMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := NewConfig("/nonexistent/config.yaml")
	require.Error(err)
}
