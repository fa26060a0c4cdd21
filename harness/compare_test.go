// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	require := require.New(t)

	require.Nil(Compare(nil, nil))
	require.Nil(Compare([]string{"[]61[0]"}, []string{"[]61[0]"}))

	ms := Compare([]string{"[]61[0]", "[]62[1]"}, []string{"[]61[0]", "[]63[1]"})
	require.Len(ms, 1)
	require.Equal(Mismatch{Line: 1, Want: "[]62[1]", Got: "[]63[1]"}, ms[0])

	// a line missing on one side surfaces with the other field empty
	ms = Compare([]string{"[]61[0]", "[]62[1]"}, []string{"[]61[0]"})
	require.Len(ms, 1)
	require.Equal(Mismatch{Line: 1, Want: "[]62[1]", Got: ""}, ms[0])

	ms = Compare(nil, []string{"[]"})
	require.Len(ms, 1)
	require.Equal(Mismatch{Line: 0, Want: "", Got: "[]"}, ms[0])
}
