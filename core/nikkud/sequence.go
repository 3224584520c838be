package nikkud

import (
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// Sequence names the vav/yud skeleton that follows a group's leading
// consonant.
type Sequence int

const (
	SeqVav Sequence = iota
	SeqYud
	SeqNull
	SeqYudYud
	SeqVavYud
	SeqYudVav
	SeqVavVav
	SeqYudVavVav
	SeqVavYudVav
	SeqVavYudYud
	SeqVavVavYud
	SeqYudVavYud
	SeqYudVavVavYud
	SeqYudVavYudVav
	SeqVavVavYudVav
	SeqVavVavYudYud
	SeqOther
)

// Sequences lists every Sequence, SeqOther last.
var Sequences = []Sequence{
	SeqVav, SeqYud, SeqNull, SeqYudYud, SeqVavYud, SeqYudVav, SeqVavVav,
	SeqYudVavVav, SeqVavYudVav, SeqVavYudYud, SeqVavVavYud, SeqYudVavYud,
	SeqYudVavVavYud, SeqYudVavYudVav, SeqVavVavYudVav, SeqVavVavYudYud,
	SeqOther,
}

var sequenceNames = map[Sequence]string{
	SeqVav:          "VAV",
	SeqYud:          "YUD",
	SeqNull:         "NULL",
	SeqYudYud:       "YUDYUD",
	SeqVavYud:       "VAVYUD",
	SeqYudVav:       "YUDVAV",
	SeqVavVav:       "VAVVAV",
	SeqYudVavVav:    "YUDVAVVAV",
	SeqVavYudVav:    "VAVYUDVAV",
	SeqVavYudYud:    "VAVYUDYUD",
	SeqVavVavYud:    "VAVVAVYUD",
	SeqYudVavYud:    "YUDVAVYUD",
	SeqYudVavVavYud: "YUDVAVVAVYUD",
	SeqYudVavYudVav: "YUDVAVYUDVAV",
	SeqVavVavYudVav: "VAVVAVYUDVAV",
	SeqVavVavYudYud: "VAVVAVYUDYUD",
	SeqOther:        "OTHER",
}

// skeletons maps each literal vav/yud run to its Sequence.
var skeletons = map[string]Sequence{
	"ו":    SeqVav,
	"י":    SeqYud,
	"":     SeqNull,
	"יי":   SeqYudYud,
	"וי":   SeqVavYud,
	"יו":   SeqYudVav,
	"וו":   SeqVavVav,
	"יוו":  SeqYudVavVav,
	"ויו":  SeqVavYudVav,
	"ויי":  SeqVavYudYud,
	"ווי":  SeqVavVavYud,
	"יוי":  SeqYudVavYud,
	"יווי": SeqYudVavVavYud,
	"יויו": SeqYudVavYudVav,
	"וויו": SeqVavVavYudVav,
	"וויי": SeqVavVavYudYud,
}

func (s Sequence) String() string {
	if name, ok := sequenceNames[s]; ok {
		return name
	}
	return "OTHER"
}

// Pattern returns the literal vav/yud run for s; SeqNull and SeqOther are "".
func (s Sequence) Pattern() string {
	for pattern, seq := range skeletons {
		if seq == s {
			return pattern
		}
	}
	return ""
}

// Classify looks up a bare skeleton. Unknown runs are SeqOther.
func Classify(skeleton string) Sequence {
	if seq, ok := skeletons[skeleton]; ok {
		return seq
	}
	return SeqOther
}

// ClassifyGroup classifies the text of one letter group: the leading
// character is dropped along with any ASCII apostrophes, and what remains is
// looked up as a skeleton. The text is used as given, so pointed text only
// classifies when its marks were stripped first.
func ClassifyGroup(text string) Sequence {
	runes := []rune(text)
	if len(runes) == 0 {
		return SeqOther
	}
	rest := strings.ReplaceAll(string(runes[1:]), string(hebrew.Apostrophe), "")
	return Classify(rest)
}
