package corpus

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
)

// VerseSource looks up the vocalized text of a verse.
type VerseSource interface {
	Verse(ref Ref) (string, error)
	Len() int
}

// Verses is an in-memory VerseSource keyed by OSIS ID.
type Verses struct {
	name  string
	texts map[string]string
}

func newVerses(name string) *Verses {
	return &Verses{name: name, texts: make(map[string]string)}
}

// Verse returns the text for ref or a NotFoundError.
func (v *Verses) Verse(ref Ref) (string, error) {
	text, ok := v.texts[ref.String()]
	if !ok {
		return "", errors.NewNotFound("verse", ref.String()+" in "+v.name)
	}
	return text, nil
}

// Len returns the number of verses loaded.
func (v *Verses) Len() int {
	return len(v.texts)
}

// ReadText reads OSHB-style plain text: one verse per line, the OSIS ID
// first, then the words. Blank lines and "#" comments are skipped. Morpheme
// separators ("/") inside words are removed.
func ReadText(r io.Reader, name string) (*Verses, error) {
	verses := newVerses(name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, text, ok := strings.Cut(line, " ")
		if !ok {
			return nil, errors.NewParse("verse text", name, lineNo, "expected \"<ref> <words>\"")
		}
		ref, err := ParseRef(id)
		if err != nil {
			return nil, errors.NewParse("verse text", name, lineNo, err.Error())
		}
		verses.texts[ref.String()] = cleanWords(strings.Fields(text))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}
	return verses, nil
}

var (
	verseExpr = xpath.MustCompile(`//*[local-name()='verse'][@osisID]`)
	wordExpr  = xpath.MustCompile(`.//*[local-name()='w']`)
)

// ReadOSIS reads an OSIS document such as the OSHB morphology files. Each
// container verse contributes its w elements, joined by spaces.
func ReadOSIS(r io.Reader, name string) (*Verses, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.NewParse("OSIS", name, 0, err.Error())
	}

	verses := newVerses(name)
	for _, node := range xmlquery.QuerySelectorAll(doc, verseExpr) {
		ref, err := ParseRef(node.SelectAttr("osisID"))
		if err != nil {
			return nil, errors.NewParse("OSIS", name, 0, err.Error())
		}

		var words []string
		for _, w := range xmlquery.QuerySelectorAll(node, wordExpr) {
			words = append(words, strings.TrimSpace(w.InnerText()))
		}
		verses.texts[ref.String()] = cleanWords(words)
	}
	if verses.Len() == 0 {
		return nil, errors.NewParse("OSIS", name, 0, "no verse elements with osisID")
	}
	return verses, nil
}

// LoadVerses opens path and reads it as OSIS when its extension is .xml or
// .osis and as plain text otherwise. A trailing .xz is decompressed first.
func LoadVerses(path string) (*Verses, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch strings.ToLower(filepath.Ext(baseName(path))) {
	case ".xml", ".osis":
		return ReadOSIS(rc, path)
	default:
		return ReadText(rc, path)
	}
}

func cleanWords(words []string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ReplaceAll(w, "/", "")
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// String describes the source for logs.
func (v *Verses) String() string {
	return fmt.Sprintf("%s (%d verses)", v.name, len(v.texts))
}
