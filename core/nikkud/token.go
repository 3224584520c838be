package nikkud

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// Token is one claimed span of a phrase: a Hebrew letter group, a separator
// or a digit run.
type Token struct {
	text   string
	root   string
	marks  []rune
	hebrew bool
}

// newToken parses a claimed span. Tokens starting with a Hebrew letter split
// into letters (the root) and everything else (the marks, kept sorted so
// input order never matters). Anything else keeps its text as the root.
func newToken(text string) Token {
	t := Token{text: text, root: text}

	runes := []rune(text)
	if len(runes) == 0 || !hebrew.IsLetter(runes[0]) {
		return t
	}

	t.hebrew = true
	var root strings.Builder
	for _, r := range runes {
		if hebrew.IsLetter(r) {
			root.WriteRune(r)
		} else {
			t.marks = append(t.marks, r)
		}
	}
	t.root = root.String()
	slices.Sort(t.marks)
	return t
}

// Text returns the span exactly as it was claimed from the phrase.
func (t Token) Text() string { return t.text }

// Root returns the consonant letters, or the raw text for non-Hebrew tokens.
func (t Token) Root() string { return t.root }

// Marks returns a copy of the sorted diacritics (and geresh/apostrophe).
func (t Token) Marks() []rune { return slices.Clone(t.marks) }

// IsHebrew reports whether the token starts with a Hebrew letter.
func (t Token) IsHebrew() bool { return t.hebrew }

// String renders the root followed by the sorted marks.
func (t Token) String() string {
	return t.root + string(t.marks)
}

// Bracketed renders the token as "[root+marks]".
func (t Token) Bracketed() string {
	return "[" + t.String() + "]"
}

// markSet is the working copy of one separated billet position while a rule
// is applied. It stays sorted; union adds only marks not already present.
type markSet []rune

func (m markSet) contains(r rune) bool {
	_, found := slices.BinarySearch(m, r)
	return found
}

func (m markSet) add(r rune) markSet {
	i, found := slices.BinarySearch(m, r)
	if found {
		return m
	}
	return slices.Insert(m, i, r)
}

func (m markSet) union(other []rune) markSet {
	for _, r := range other {
		m = m.add(r)
	}
	return m
}

func (m markSet) remove(r rune) markSet {
	return slices.DeleteFunc(m, func(x rune) bool { return x == r })
}
