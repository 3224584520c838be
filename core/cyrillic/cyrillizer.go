// Package cyrillic transliterates pointed Hebrew into Cyrillic for human
// inspection of diagnostics. It is lossy and never feeds back into spreading.
package cyrillic

import (
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// cluster is one letter with the marks written after it.
type cluster struct {
	letter rune
	marks  []rune
	geresh bool
}

func (c cluster) has(m rune) bool {
	for _, x := range c.marks {
		if x == m {
			return true
		}
	}
	return false
}

// vowel returns the Cyrillic vowel for the cluster's point, or "" for sheva
// and unpointed letters.
func (c cluster) vowel() string {
	for _, m := range c.marks {
		switch m {
		case hebrew.Holam, hebrew.HolamHaserOfVav, hebrew.QamatsQatan, hebrew.HatafQamats:
			return "о"
		case hebrew.Patah, hebrew.Qamats, hebrew.HatafPatah:
			return "а"
		case hebrew.Segol, hebrew.HatafSegol:
			return "э"
		case hebrew.Tsere:
			return "е"
		case hebrew.Hiriq:
			return "и"
		case hebrew.Qubuts:
			return "у"
		}
	}
	return ""
}

// plain consonants; letters whose sound depends on a mark are handled in
// consonant.
var plain = map[rune]string{
	'א': "", 'ד': "д", 'ה': "х", 'ח': "х", 'ט': "т", 'י': "й",
	'ל': "л", 'מ': "м", 'ם': "м", 'נ': "н", 'ן': "н", 'ס': "с",
	'ע': "", 'ק': "к", 'ר': "р", 'ת': "т",
}

func (c cluster) consonant() string {
	switch c.letter {
	case 'ב':
		if c.has(hebrew.Dagesh) {
			return "б"
		}
		return "в"
	case 'ג':
		if c.geresh {
			return "дж"
		}
		return "г"
	case 'ז':
		if c.geresh {
			return "ж"
		}
		return "з"
	case 'כ', 'ך':
		if c.has(hebrew.Dagesh) {
			return "к"
		}
		return "х"
	case 'פ', 'ף':
		if c.has(hebrew.Dagesh) {
			return "п"
		}
		return "ф"
	case 'צ', 'ץ':
		if c.geresh {
			return "ч"
		}
		return "ц"
	case 'ש':
		if c.has(hebrew.SinDot) {
			return "с"
		}
		return "ш"
	case hebrew.Vav:
		return "в"
	}
	return plain[c.letter]
}

// iotated folds "й" plus a vowel into the Cyrillic iotated letter.
var iotated = map[string]string{"а": "я", "у": "ю", "э": "е", "е": "е", "и": "и"}

// Transliterate renders s in Cyrillic. Non-Hebrew characters pass through,
// maqaf becomes a hyphen and sof pasuq a full stop.
func Transliterate(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	prevVowel := ""
	wordStart := true

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !hebrew.IsLetter(r) {
			switch {
			case r == hebrew.Maqaf:
				sb.WriteRune('-')
			case r == hebrew.SofPasuq:
				sb.WriteRune('.')
			case hebrew.IsDiacritic(r), r == hebrew.Geresh:
			default:
				sb.WriteRune(r)
			}
			prevVowel = ""
			wordStart = true
			continue
		}

		c := cluster{letter: r}
		j := i + 1
		for ; j < len(runes); j++ {
			switch {
			case hebrew.IsDiacritic(runes[j]):
				c.marks = append(c.marks, runes[j])
				continue
			case runes[j] == hebrew.Geresh || runes[j] == hebrew.Apostrophe:
				c.geresh = true
				continue
			}
			break
		}
		wordEnd := j >= len(runes) || !hebrew.IsLetter(runes[j])
		i = j - 1

		out, v := c.render(prevVowel, wordStart, wordEnd)
		sb.WriteString(out)
		prevVowel = v
		wordStart = false
	}
	return sb.String()
}

// render returns the Cyrillic for one cluster and the vowel it ends in.
func (c cluster) render(prevVowel string, wordStart, wordEnd bool) (string, string) {
	v := c.vowel()
	switch c.letter {
	case hebrew.Vav:
		if v == "о" && !wordStart && prevVowel == "" {
			return "о", "о"
		}
		if v == "" && c.has(hebrew.Dagesh) && (wordStart || prevVowel == "") {
			return "у", "у"
		}
	case hebrew.Yud:
		if v == "" && !wordStart && (prevVowel == "и" || prevVowel == "е") {
			return "", prevVowel
		}
		if folded, ok := iotated[v]; ok {
			return folded, v
		}
	case 'ה':
		if wordEnd && len(c.marks) == 0 && !wordStart {
			return "", prevVowel
		}
	}
	return c.consonant() + v, v
}
