// Package runes contains the character classes of the clause grammar.
//
// All classes are ASCII-only: a non-ASCII letter is neither an identifier
// char nor whitespace.
package runes

// IsDigit reports whether ch is an ASCII decimal digit.
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// IsIdent reports whether ch may appear in a variable name or functor.
func IsIdent(ch rune) bool {
	return ch == '_' || IsLetter(ch) || IsDigit(ch)
}

// IsSpace reports whether ch is one of the whitespace chars separating tokens:
// space, tab, carriage return or line feed.
func IsSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// Span returns the length in bytes of the longest prefix of s whose runes all
// satisfy pred.
func Span(s string, pred func(rune) bool) int {
	for i, ch := range s {
		if !pred(ch) {
			return i
		}
	}
	return len(s)
}

// IsIdents reports whether text is a non-empty sequence of identifier chars.
func IsIdents(text string) bool {
	return text != "" && Span(text, IsIdent) == len(text)
}
