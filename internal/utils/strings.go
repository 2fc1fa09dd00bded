package utils

import "strings"

// TrimOrEmpty merapikan input user tanpa mengubah nil jadi "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace merapatkan whitespace berulang jadi satu spasi.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
