// Package corpus reads the inputs of batch spreading: pair files, verse
// sources in OSHB text or OSIS XML form, and OSIS verse references.
package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Ref identifies one verse, e.g. "Gen.1.1" or "1Kgs.3.16".
type Ref struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Prefix  string `@Int?`
	Book    string `@Ident`
	Chapter int    `"." @Int`
	Verse   int    `"." @Int`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Z][A-Za-z]*`},
	{Name: "Punct", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseRef parses a book.chapter.verse reference. Whole-book, whole-chapter
// and range forms are rejected: spreading works one verse at a time.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return Ref{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}
	if parsed.Chapter == 0 || parsed.Verse == 0 {
		return Ref{}, fmt.Errorf("invalid reference %q: chapter and verse start at 1", s)
	}

	return Ref{
		Book:    parsed.Prefix + parsed.Book,
		Chapter: parsed.Chapter,
		Verse:   parsed.Verse,
	}, nil
}

// String returns the OSIS ID of r.
func (r Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(r.Chapter))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(r.Verse))
	return sb.String()
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.Book == ""
}
