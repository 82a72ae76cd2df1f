package document

import "unicode/utf8"

// CharCount returns the number of characters in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
