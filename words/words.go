// Package words works with single strings and the words in them.
//
// The functions differ in how they treat their argument: most only
// read it, Uppercase modifies the caller's string through a pointer,
// and Exclaim takes a copy and returns the modified copy.
package words

import (
	"strings"
	"unicode/utf8"
)

// Len returns the length of s in bytes.
func Len(s string) int {
	return len(s)
}

// Uppercase converts the ASCII letters of *s to upper case, in place.
// Other bytes are left alone.
func Uppercase(s *string) {
	b := []byte(*s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	*s = string(b)
}

// FirstWord returns s up to its first space, or all of s if it has none.
func FirstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// SecondWord returns the part of s between its first and second space.
// Every single space separates two words, so consecutive spaces
// produce empty words. ok is false if s has no space.
func SecondWord(s string) (word string, ok bool) {
	parts := strings.SplitN(s, " ", 3)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// Exclaim returns s with an exclamation mark appended.
func Exclaim(s string) string {
	return s + "!"
}

// FirstRune returns the first rune of s. ok is false if s is empty.
func FirstRune(s string) (r rune, ok bool) {
	if s == "" {
		return
	}
	r, _ = utf8.DecodeRuneInString(s)
	return r, true
}
