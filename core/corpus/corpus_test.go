package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	herrors "github.com/FocuswithJustin/hebrewutils/core/errors"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    Ref
		wantErr bool
	}{
		{in: "Gen.1.1", want: Ref{Book: "Gen", Chapter: 1, Verse: 1}},
		{in: " Exod.20.13 ", want: Ref{Book: "Exod", Chapter: 20, Verse: 13}},
		{in: "1Kgs.3.16", want: Ref{Book: "1Kgs", Chapter: 3, Verse: 16}},
		{in: "", wantErr: true},
		{in: "Gen", wantErr: true},
		{in: "Gen.1", wantErr: true},
		{in: "Gen.0.1", wantErr: true},
		{in: "gen.1.1", wantErr: true},
		{in: "Gen.1.1-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRef(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRef(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseRef(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != strings.TrimSpace(tt.in) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

const pairFile = `# sample pairs
[Gen.1.1] בְּרֵאשִׁית | בראשית

מִצְוָה | מצווה  # plene spelling
[2Sam.5.3] דָּוִד|דויד
`

func TestReadPairs(t *testing.T) {
	pairs, err := ReadPairs(strings.NewReader(pairFile), "pairs.txt")
	if err != nil {
		t.Fatalf("ReadPairs() error = %v", err)
	}

	want := []Pair{
		{Line: 2, Ref: Ref{Book: "Gen", Chapter: 1, Verse: 1}, Reference: "בְּרֵאשִׁית", Billet: "בראשית"},
		{Line: 4, Reference: "מִצְוָה", Billet: "מצווה"},
		{Line: 5, Ref: Ref{Book: "2Sam", Chapter: 5, Verse: 3}, Reference: "דָּוִד", Billet: "דויד"},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %+v", len(pairs), len(want), pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, pairs[i], want[i])
		}
	}
	if pairs[1].Label() != "line 4" || pairs[0].Label() != "Gen.1.1" {
		t.Errorf("labels: %q %q", pairs[0].Label(), pairs[1].Label())
	}
}

func TestReadPairsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"no bar", "שָׁלוֹם שלום\n", 1},
		{"empty billet", "\nשָׁלוֹם |  \n", 2},
		{"two bars", "א | ב | ג\n", 1},
		{"bad label", "[genesis] א | א\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPairs(strings.NewReader(tt.input), "bad.txt")
			if !errors.Is(err, herrors.ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			var pe *herrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func writeXZ(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPairsXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt.xz")
	writeXZ(t, path, pairFile)

	pairs, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("LoadPairs() error = %v", err)
	}
	if len(pairs) != 3 {
		t.Errorf("got %d pairs, want 3", len(pairs))
	}
}

func TestLoadPairsMissingFile(t *testing.T) {
	_, err := LoadPairs(filepath.Join(t.TempDir(), "nope.txt"))
	var ioErr *herrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want IOError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("IOError should wrap the os error")
	}
}

const verseText = `# OSHB
Gen.1.1 בְּ/רֵאשִׁית בָּרָא אֱלֹהִים
Gen.1.2 וְ/הָ/אָרֶץ הָיְתָה תֹהוּ וָ/בֹהוּ
`

func TestReadText(t *testing.T) {
	verses, err := ReadText(strings.NewReader(verseText), "gen.txt")
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if verses.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", verses.Len())
	}

	got, err := verses.Verse(Ref{Book: "Gen", Chapter: 1, Verse: 2})
	if err != nil {
		t.Fatal(err)
	}
	if want := "וְהָאָרֶץ הָיְתָה תֹהוּ וָבֹהוּ"; got != want {
		t.Errorf("Verse() = %q, want %q", got, want)
	}

	_, err = verses.Verse(Ref{Book: "Gen", Chapter: 1, Verse: 3})
	if !errors.Is(err, herrors.ErrNotFound) {
		t.Errorf("missing verse error = %v, want ErrNotFound", err)
	}
}

func TestReadTextBadLine(t *testing.T) {
	_, err := ReadText(strings.NewReader("Gen.1.1\n"), "gen.txt")
	var pe *herrors.ParseError
	if !errors.As(err, &pe) || pe.Line != 1 {
		t.Errorf("error = %v, want ParseError at line 1", err)
	}
}

const osisDoc = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="WLC">
    <div type="book" osisID="Gen">
      <chapter osisID="Gen.1">
        <verse osisID="Gen.1.1">
          <w lemma="b/7225" morph="HR/Ncfsa">בְּ/רֵאשִׁית</w>
          <w lemma="1254 a" morph="HVqp3ms">בָּרָא</w>
          <w lemma="430" morph="HNcmpa">אֱלֹהִים</w>
          <seg type="x-sof-pasuq">׃</seg>
        </verse>
        <verse osisID="Gen.1.2">
          <w>וְ/הָ/אָרֶץ</w>
          <w>הָיְתָה</w>
        </verse>
      </chapter>
    </div>
  </osisText>
</osis>
`

func TestReadOSIS(t *testing.T) {
	verses, err := ReadOSIS(strings.NewReader(osisDoc), "gen.xml")
	if err != nil {
		t.Fatalf("ReadOSIS() error = %v", err)
	}
	if verses.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", verses.Len())
	}

	got, err := verses.Verse(Ref{Book: "Gen", Chapter: 1, Verse: 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := "בְּרֵאשִׁית בָּרָא אֱלֹהִים"; got != want {
		t.Errorf("Verse() = %q, want %q", got, want)
	}
}

func TestReadOSISErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "<osis><verse"},
		{"no verses", "<osis><div/></osis>"},
		{"bad osisID", `<osis><verse osisID="Gen.1"><w>א</w></verse></osis>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadOSIS(strings.NewReader(tt.doc), "bad.xml")
			if !errors.Is(err, herrors.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLoadVersesDetectsFormat(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "gen.txt")
	if err := os.WriteFile(textPath, []byte(verseText), 0644); err != nil {
		t.Fatal(err)
	}
	xmlPath := filepath.Join(dir, "gen.xml.xz")
	writeXZ(t, xmlPath, osisDoc)

	for _, path := range []string{textPath, xmlPath} {
		verses, err := LoadVerses(path)
		if err != nil {
			t.Fatalf("LoadVerses(%s) error = %v", path, err)
		}
		if verses.Len() != 2 {
			t.Errorf("%s: Len() = %d, want 2", path, verses.Len())
		}
	}
}
