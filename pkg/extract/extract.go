// Package extract finds the abbreviation that ends at the cursor.
//
// Extraction scans the text before the cursor backwards and stops at the
// first character that cannot be part of an abbreviation, or at a '>' that
// closes a literal tag rather than acting as the child operator. It never
// fails: when no boundary is found the whole text is the abbreviation.
package extract

import "regexp"

// reTagEnd matches text ending with a complete opening, closing or
// self-closing tag
var reTagEnd = regexp.MustCompile(
	`<\/?[\w:\-]+(?:\s+[\w\-:]+(?:\s*=\s*(?:(?:"[^"]*")|(?:'[^']*')|[^>\s]+))?)*\s*(\/?)>$`)

// Abbreviation returns the longest abbreviation ending at the end of text
func Abbreviation(text string) string {
	start := 0
	for i := len(text) - 1; i >= 0; i-- {
		ch := text[i]
		if !IsAllowedChar(ch) || (ch == '>' && EndsWithTag(text[:i+1])) {
			start = i + 1
			break
		}
	}
	return text[start:]
}

// IsAllowedChar reports whether ch may appear inside an abbreviation
func IsAllowedChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '#', '.', '>', '+', '*', ':', '$', '-', '_', '!', '@':
		return true
	}
	return false
}

// EndsWithTag reports whether text ends with a complete tag such as
// <div class="x">, </div> or <br/>
func EndsWithTag(text string) bool {
	return reTagEnd.MatchString(text)
}
