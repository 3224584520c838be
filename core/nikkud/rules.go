package nikkud

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// transfer copies the marks of reference position from into billet
// position to. Positions index separated groups: 0 is the leading
// consonant, 1.. are the matres lectionis in order.
type transfer struct {
	to, from int
}

// markAt names one mark at one billet position.
type markAt struct {
	pos  int
	mark rune
}

// rule describes how one Reason moves marks. Steps run in field order.
type rule struct {
	transfers []transfer
	// newVavs are billet positions of a vav the reference spells
	// defectively. When the reference head carries an o-vowel they get a
	// holam (and the head keeps its dagesh); otherwise a dagesh on the
	// reference head moves onto them.
	newVavs []int
	ensure  []markAt
	strip   []markAt
}

func move(to, from int) transfer { return transfer{to: to, from: from} }

var rules = map[Reason]rule{
	VavToNull:    {transfers: []transfer{move(0, 0), move(0, 1)}},
	YudToNull:    {transfers: []transfer{move(0, 0)}, ensure: []markAt{{0, hebrew.Hiriq}}},
	NullToYud:    {},
	YudYudToYud:  {transfers: []transfer{move(0, 0)}},
	NullToYudYud: {transfers: []transfer{move(0, 0)}},
	YudToYudYud:  {transfers: []transfer{move(0, 0), move(2, 1)}},
	VavToYudVav: {
		transfers: []transfer{move(0, 0), move(2, 1)},
		strip:     []markAt{{2, hebrew.Hiriq}},
	},
	YudToYudVav: {
		transfers: []transfer{move(0, 0), move(2, 1)},
		strip:     []markAt{{2, hebrew.Dagesh}},
	},
	VavYudToYudVavYud:       {transfers: []transfer{move(0, 0), move(2, 1), move(3, 2)}},
	YudVavToYudVavYud:       {transfers: []transfer{move(0, 0), move(1, 1), move(2, 2)}},
	VavVavToYudVavVav:       {transfers: []transfer{move(0, 0), move(3, 2)}},
	VavYudToVavVavYud:       {transfers: []transfer{move(0, 0), move(2, 1), move(3, 2)}},
	VavToYudVavVav:          {transfers: []transfer{move(0, 0), move(3, 1)}},
	YudVavVavToYudVavYudVav: {transfers: []transfer{move(0, 0), move(2, 1), move(4, 3)}},
	YudVavVavYudToYudVavYud: {transfers: []transfer{move(0, 0)}},
	NullToVav:               {newVavs: []int{1}},
	VavVavToVav:             {transfers: []transfer{move(0, 0), move(1, 2)}},
	YudVavToVav: {
		transfers: []transfer{move(0, 0), move(1, 2)},
		ensure:    []markAt{{0, hebrew.Hiriq}},
	},
	NullToVavVav:   {newVavs: []int{1, 2}},
	VavToVavVav:    {transfers: []transfer{move(0, 0), move(2, 1)}},
	YudToVavYudYud: {transfers: []transfer{move(2, 1)}, newVavs: []int{1}},
	YudToVavYud:    {transfers: []transfer{move(2, 1)}, newVavs: []int{1}},
	YudVavToVavYudVav: {
		transfers: []transfer{move(2, 1), move(3, 2)},
		newVavs:   []int{1},
	},
	YudVavToVavVavYud:       {transfers: []transfer{move(0, 0), move(2, 1), move(3, 2)}},
	VavToVavVavYud:          {transfers: []transfer{move(0, 0), move(2, 1)}},
	VavYudVavToVavVavYudVav: {transfers: []transfer{move(0, 0), move(2, 1), move(3, 2), move(4, 3)}},
	VavYudYudToVavVavYudYud: {transfers: []transfer{move(0, 0), move(2, 1), move(3, 2), move(4, 3)}},
	VavYudToVavVavYudYud:    {transfers: []transfer{move(0, 0), move(2, 1), move(4, 2)}},
	VavVavYudToVavVavYudYud: {transfers: []transfer{move(0, 0), move(1, 1), move(2, 2), move(3, 3)}},
}

// apply runs r over separated reference and billet groups and returns the
// billet's marks per position. Inputs are not modified. Positions outside
// either list are skipped.
func (r rule) apply(reference, billet []Token) []markSet {
	work := make([]markSet, len(billet))
	for i, tok := range billet {
		work[i] = markSet(slices.Clone(tok.marks))
	}
	inBillet := func(pos int) bool { return pos >= 0 && pos < len(work) }

	for _, tr := range r.transfers {
		if !inBillet(tr.to) || tr.from < 0 || tr.from >= len(reference) {
			continue
		}
		work[tr.to] = work[tr.to].union(reference[tr.from].marks)
	}

	if len(r.newVavs) > 0 && len(reference) > 0 {
		head := markSet(reference[0].marks)
		switch {
		case hebrew.ContainsNonStressedO(head):
			for _, pos := range r.newVavs {
				if inBillet(pos) {
					work[pos] = work[pos].add(hebrew.Holam)
				}
			}
			if head.contains(hebrew.Dagesh) && inBillet(0) {
				work[0] = work[0].add(hebrew.Dagesh)
			}
		case head.contains(hebrew.Dagesh):
			for _, pos := range r.newVavs {
				if inBillet(pos) {
					work[pos] = work[pos].add(hebrew.Dagesh)
				}
			}
		}
	}

	for _, m := range r.ensure {
		if inBillet(m.pos) {
			work[m.pos] = work[m.pos].add(m.mark)
		}
	}
	for _, m := range r.strip {
		if inBillet(m.pos) {
			work[m.pos] = work[m.pos].remove(m.mark)
		}
	}
	return work
}

// render concatenates each billet root with its working marks.
func render(billet []Token, marks []markSet) (plain, bracketed string) {
	var p, b strings.Builder
	for i, tok := range billet {
		s := tok.root + string(marks[i])
		p.WriteString(s)
		b.WriteString("[" + s + "]")
	}
	return p.String(), b.String()
}
