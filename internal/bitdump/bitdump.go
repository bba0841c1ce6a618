/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

// Package bitdump renders bytes as fixed-width binary strings, least
// significant bit first, alongside their hex value.
package bitdump

import "strings"

const hexdigits = "0123456789abcdef"

// Bits returns the 8 bits of b as a string of '0' and '1' characters, least
// significant bit first.
func Bits(b byte) string {
	var sb strings.Builder
	sb.Grow(8)
	for bit := 0; bit < 8; bit++ {
		if b&(1<<uint(bit)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Line returns the hex value of b followed by its bits, e.g. "63 11000110".
func Line(b byte) string {
	var sb strings.Builder
	sb.Grow(11)
	sb.WriteByte(hexdigits[b>>4])
	sb.WriteByte(hexdigits[b&0x0f])
	sb.WriteByte(' ')
	sb.WriteString(Bits(b))
	return sb.String()
}

// Dump returns one Line per input byte.
func Dump(data []byte) []string {
	out := make([]string, len(data))
	for i, b := range data {
		out[i] = Line(b)
	}
	return out
}
