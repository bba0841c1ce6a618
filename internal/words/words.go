/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

// Package words implements full and word-order string reversal. Both
// transforms are involutions: applying one twice returns the input.
package words

import "strings"

// Reverse returns the input with its characters in reverse order.
func Reverse(input string) string {
	runes := []rune(input)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseWords returns the input with its space-separated words in reverse
// order. The words themselves are unchanged.
func ReverseWords(input string) string {
	fields := strings.Split(input, " ")

	var sb strings.Builder
	sb.Grow(len(input))
	for i := len(fields) - 1; i >= 0; i-- {
		sb.WriteString(fields[i])
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
