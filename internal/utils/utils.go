// Package utils contains path and string helpers.
package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Finds the ansi escape sequences (like colors)
// Taken from: https://github.com/chalk/ansi-regex/blob/d9d806ecb45d899cf43408906a4440060c5c50e5/index.js
var ansiEscapes = regexp.MustCompile(`[\x1B\x9B][[\]()#;?]*` +
	`(?:(?:(?:[a-zA-Z\d]*(?:;[a-zA-Z\\d]*)*)?\x07)` +
	`|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PRZcf-ntqry=><~]))`)

// EscapeAwareRuneCountInString counts the number of runes in a
// string taking into account escape sequences.
func EscapeAwareRuneCountInString(s string) int {
	n := utf8.RuneCountInString(s)
	for _, sm := range ansiEscapes.FindAllString(s, -1) {
		n -= utf8.RuneCountInString(sm)
	}
	return n
}

// RightPad adds right padding to a string
func RightPad(str string, length int) string {
	c := length - EscapeAwareRuneCountInString(str)
	if c < 0 {
		c = 0
	}
	return str + strings.Repeat(" ", c)
}

// LeftPad adds left padding to a string
func LeftPad(str string, length int) string {
	c := length - EscapeAwareRuneCountInString(str)
	if c < 0 {
		c = 0
	}
	return strings.Repeat(" ", c) + str
}

// Truncate shortens str to at most length runes, appending "..." when
// something was cut.
func Truncate(str string, length int) string {
	if utf8.RuneCountInString(str) <= length {
		return str
	}
	if length <= 3 {
		return string([]rune(str)[:length])
	}
	return string([]rune(str)[:length-3]) + "..."
}
