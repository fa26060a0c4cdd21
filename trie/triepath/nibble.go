// Copyright (c) 2022 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package triepath

const _hexDigits = "0123456789abcdef"

// KeyNibbles expands a key into its ordered sequence of 4-bit digits, the
// high nibble of each byte first. The expansion preserves lexicographic
// order: comparing nibble sequences digit by digit orders keys the same way
// as comparing them byte by byte. An empty key yields an empty sequence.
func KeyNibbles(key []byte) []byte {
	nib := make([]byte, 2*len(key))
	for i, b := range key {
		nib[2*i] = b >> 4
		nib[2*i+1] = b & 0x0f
	}
	return nib
}

// hexDigit renders a nibble as one lowercase hex character
func hexDigit(nibble byte) byte {
	return _hexDigits[nibble&0x0f]
}
