package tree

import (
	"strconv"
	"strings"
)

// MaxMultiplier is the largest *N an abbreviation may carry. Larger
// counts are left unconsumed and the abbreviation does not parse.
const MaxMultiplier = 1000

// token is one element of an abbreviation:
// (op)?(name)(#id)?(.class)*(*count)?
type token struct {
	op      byte
	name    string
	id      string
	classes []string
	count   int
}

// scan splits abbr into tokens. It reports the offset of the first
// character no token could consume; -1 means the whole string was read.
func scan(abbr string) ([]token, int) {
	var tokens []token
	pos := 0
	for pos < len(abbr) {
		tok, next, ok := scanToken(abbr, pos)
		if !ok {
			return tokens, pos
		}
		tokens = append(tokens, tok)
		pos = next
	}
	return tokens, -1
}

func scanToken(s string, pos int) (token, int, bool) {
	var tok token
	i := pos

	if i < len(s) && (s[i] == '>' || s[i] == '+') {
		tok.op = s[i]
		i++
	}

	if i >= len(s) || !isLetter(s[i]) {
		return token{}, pos, false
	}
	start := i
	for i++; i < len(s) && isNameChar(s[i]); i++ {
	}
	tok.name = s[start:i]

	if i < len(s) && s[i] == '#' {
		if end := scanWord(s, i+1); end > i+1 {
			tok.id = s[i+1 : end]
			i = end
		}
	}

	for i < len(s) && s[i] == '.' {
		end := scanWord(s, i+1)
		if end == i+1 {
			break
		}
		tok.classes = append(tok.classes, s[i+1:end])
		i = end
	}

	tok.count = 1
	if i < len(s) && s[i] == '*' {
		end := i + 1
		for end < len(s) && isDigit(s[end]) {
			end++
		}
		if end > i+1 {
			if n, err := strconv.Atoi(s[i+1 : end]); err == nil && n <= MaxMultiplier {
				if n > 0 {
					tok.count = n
				}
				i = end
			}
		}
	}

	return tok, i, true
}

// scanWord returns the end of a run of id/class characters starting at i
func scanWord(s string, i int) int {
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return i
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || strings.IndexByte(":!-", c) >= 0
}

func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c) || strings.IndexByte("_-$", c) >= 0
}
