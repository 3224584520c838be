package nikkud

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// Mode selects how vav and yud letters are grouped.
type Mode int

const (
	// Merged keeps a run of vav/yud letters in the group of the consonant
	// before it, so each group is one consonant plus its matres lectionis.
	Merged Mode = iota
	// Separated makes every vav and yud its own group.
	Separated
)

// separators are claimed verbatim, in this order, before letters and digits.
var separators = []string{" ", string(hebrew.Dot), string(hebrew.Maqaf)}

// TokenList is a tokenized phrase.
type TokenList struct {
	source string
	tokens []Token
}

// Tokenize splits phrase into tokens. Abbreviation marks and hyphens are
// normalized first (see hebrew.Normalize); then spans are claimed in priority
// order (spaces, dots, maqafs, letter groups, digit runs), each pass blanking
// what it claimed so passes never overlap. Characters no pass claims are not
// tokenized. Tokenize never fails.
func Tokenize(phrase string, mode Mode) *TokenList {
	runes := []rune(hebrew.Normalize(phrase))
	claimed := make([]string, len(runes))

	for _, sep := range separators {
		claimSeparator(runes, claimed, []rune(sep))
	}
	claimLetters(runes, claimed, mode)
	claimDigits(runes, claimed)

	tl := &TokenList{source: phrase}
	for _, span := range claimed {
		if span != "" {
			tl.tokens = append(tl.tokens, newToken(span))
		}
	}
	return tl
}

func claimSeparator(runes []rune, claimed []string, sep []rune) {
	n := len(sep)
	for i := 0; i+n <= len(runes); i++ {
		if !slices.Equal(runes[i:i+n], sep) {
			continue
		}
		claimed[i] = string(sep)
		for j := i; j < i+n; j++ {
			runes[j] = ' '
		}
		i += n - 1
	}
}

func claimLetters(runes []rune, claimed []string, mode Mode) {
	for i := 0; i < len(runes); i++ {
		if !hebrew.IsLetter(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && continuesGroup(runes[j], mode) {
			j++
		}
		claimed[i] = string(runes[i:j])
		i = j - 1
	}
}

// continuesGroup reports whether r extends the letter group before it.
func continuesGroup(r rune, mode Mode) bool {
	switch {
	case hebrew.IsDiacritic(r), r == hebrew.Geresh, r == hebrew.Apostrophe:
		return true
	case mode == Merged && hebrew.IsMater(r):
		return true
	}
	return false
}

func claimDigits(runes []rune, claimed []string) {
	for i := 0; i < len(runes); i++ {
		if !isDigit(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
		claimed[i] = string(runes[i:j])
		i = j - 1
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Len returns the number of tokens.
func (tl *TokenList) Len() int { return len(tl.tokens) }

// At returns the i-th token.
func (tl *TokenList) At(i int) Token { return tl.tokens[i] }

// Tokens returns a copy of the token slice.
func (tl *TokenList) Tokens() []Token {
	out := make([]Token, len(tl.tokens))
	copy(out, tl.tokens)
	return out
}

// Source returns the phrase as given to Tokenize, before normalization.
func (tl *TokenList) Source() string { return tl.source }

// String concatenates every token's rendered form.
func (tl *TokenList) String() string {
	var sb strings.Builder
	for _, t := range tl.tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Bracketed concatenates every token's bracketed form.
func (tl *TokenList) Bracketed() string {
	var sb strings.Builder
	for _, t := range tl.tokens {
		sb.WriteString(t.Bracketed())
	}
	return sb.String()
}
