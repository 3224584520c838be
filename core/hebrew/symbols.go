// Package hebrew classifies Hebrew code points: consonant letters, pointing
// and cantillation marks, and the punctuation that Hebrew text borrows for
// abbreviations and compounds.
package hebrew

import "strings"

// Consonant letters used as matres lectionis.
const (
	Vav rune = 'ו'
	Yud rune = 'י'
)

// Pointing marks.
const (
	Sheva           rune = '\u05B0'
	HatafSegol      rune = '\u05B1'
	HatafPatah      rune = '\u05B2'
	HatafQamats     rune = '\u05B3'
	Hiriq           rune = '\u05B4'
	Tsere           rune = '\u05B5'
	Segol           rune = '\u05B6'
	Patah           rune = '\u05B7'
	Qamats          rune = '\u05B8'
	Holam           rune = '\u05B9'
	HolamHaserOfVav rune = '\u05BA'
	Qubuts          rune = '\u05BB'
	Dagesh          rune = '\u05BC'
	Meteg           rune = '\u05BD'
	Rafe            rune = '\u05BF'
	ShinDot         rune = '\u05C1'
	SinDot          rune = '\u05C2'
	UpperDot        rune = '\u05C4'
	LowerDot        rune = '\u05C5'
	QamatsQatan     rune = '\u05C7'
)

// Punctuation.
const (
	Maqaf      rune = '\u05BE'
	SofPasuq   rune = '\u05C3'
	Geresh     rune = '\u05F3'
	Gershayim  rune = '\u05F4'
	Apostrophe rune = '\''
	Dot        rune = '.'
	Hyphen     rune = '-'
)

// Abbreviation marks that collapse to Dot before tokenizing. Order matters:
// the two-character forms are replaced before their single-character parts.
var abbreviationMarks = []string{
	string([]rune{Geresh, Geresh}),
	"''",
	`"`,
	string(Gershayim),
}

// IsLetter reports whether r is one of the 27 Hebrew letter forms (alef..tav,
// final forms included).
func IsLetter(r rune) bool {
	return r >= '\u05D0' && r <= '\u05EA'
}

// IsMater reports whether r is vav or yud.
func IsMater(r rune) bool {
	return r == Vav || r == Yud
}

// IsDiacritic reports whether r is a Hebrew cantillation or pointing mark.
// Maqaf, paseq and sof pasuq sit inside the same block but are punctuation.
func IsDiacritic(r rune) bool {
	switch {
	case r >= '\u0591' && r <= '\u05AF':
		return true
	case r >= Sheva && r <= Meteg:
		return true
	}
	switch r {
	case Rafe, ShinDot, SinDot, UpperDot, LowerDot, QamatsQatan:
		return true
	}
	return false
}

// StripDiacritics removes every pointing and cantillation mark from s.
func StripDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if IsDiacritic(r) {
			return -1
		}
		return r
	}, s)
}

// ContainsNonStressedO reports whether marks carry an o-class vowel that plene
// spelling writes with a vav: holam (either form), qamats qatan or hataf qamats.
func ContainsNonStressedO(marks []rune) bool {
	for _, m := range marks {
		switch m {
		case Holam, HolamHaserOfVav, QamatsQatan, HatafQamats:
			return true
		}
	}
	return false
}

// Normalize folds abbreviation marks (double geresh, double apostrophe, ASCII
// quote, gershayim) into Dot and the ASCII hyphen into maqaf.
func Normalize(s string) string {
	for _, mark := range abbreviationMarks {
		s = strings.ReplaceAll(s, mark, string(Dot))
	}
	return strings.ReplaceAll(s, string(Hyphen), string(Maqaf))
}
