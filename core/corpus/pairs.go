package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
)

// Pair is one reference/billet line of a pair file.
type Pair struct {
	Line      int    `json:"line"`
	Ref       Ref    `json:"ref"`
	Reference string `json:"reference"`
	Billet    string `json:"billet"`
}

// Label returns the verse reference of p, or "line N" when p is unlabelled.
func (p Pair) Label() string {
	if p.Ref.IsZero() {
		return "line " + strconv.Itoa(p.Line)
	}
	return p.Ref.String()
}

// pairGrammar is one line: an optional bracketed label, the reference
// phrase, a bar, and the billet phrase. A trailing "#" comment is dropped.
//
//nolint:govet // participle grammar tags are not standard struct tags
type pairGrammar struct {
	Label     *string `@Label?`
	Reference string  `@Text`
	Billet    string  `"|" @Text`
}

var pairLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Label", Pattern: `\[[^\]\n]*\]`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Text", Pattern: `[^|\[\]#\n]+`},
})

var pairParser = participle.MustBuild[pairGrammar](
	participle.Lexer(pairLexer),
	participle.Elide("Comment"),
)

// ReadPairs parses a pair file. Blank lines and lines starting with "#" are
// skipped. name is used in error messages only.
func ReadPairs(r io.Reader, name string) ([]Pair, error) {
	var pairs []Pair

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parsePairLine(line, name, lineNo)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}
	return pairs, nil
}

func parsePairLine(line, name string, lineNo int) (Pair, error) {
	parsed, err := pairParser.ParseString(name, line)
	if err != nil {
		return Pair{}, errors.NewParse("pairs", name, lineNo,
			fmt.Sprintf("expected \"[label] reference | billet\": %v", err))
	}

	p := Pair{
		Line:      lineNo,
		Reference: strings.TrimSpace(parsed.Reference),
		Billet:    strings.TrimSpace(parsed.Billet),
	}
	if p.Reference == "" || p.Billet == "" {
		return Pair{}, errors.NewParse("pairs", name, lineNo, "reference and billet must both be present")
	}

	if parsed.Label != nil {
		label := strings.Trim(*parsed.Label, "[]")
		ref, err := ParseRef(label)
		if err != nil {
			return Pair{}, errors.NewParse("pairs", name, lineNo, err.Error())
		}
		p.Ref = ref
	}
	return p, nil
}

// LoadPairs reads the pair file at path, decompressing ".xz" files.
func LoadPairs(path string) ([]Pair, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadPairs(rc, path)
}
