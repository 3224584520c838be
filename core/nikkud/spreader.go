package nikkud

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/hebrewutils/core/cyrillic"
	"github.com/FocuswithJustin/hebrewutils/core/errors"
)

// Spreader holds one reference/billet pair and the result of spreading the
// reference's marks onto the billet. It is immutable once built and safe to
// share between goroutines.
type Spreader struct {
	reference string
	billet    string
	changes   []*Change
	result    string
}

// New aligns reference and billet group by group and builds one Change per
// position. It fails with a MissingInputError when either phrase is empty and
// with an IncompatibleInputError when the phrases tokenize to different
// lengths or an aligned consonant differs.
func New(reference, billet string) (*Spreader, error) {
	if reference == "" {
		return nil, errors.NewMissingInput("reference")
	}
	if billet == "" {
		return nil, errors.NewMissingInput("billet")
	}

	refTokens := Tokenize(reference, Merged)
	billetTokens := Tokenize(billet, Merged)
	if refTokens.Len() != billetTokens.Len() {
		return nil, errors.NewIncompatibleInput("", "",
			fmt.Sprintf("reference has %d tokens, billet has %d", refTokens.Len(), billetTokens.Len()))
	}

	s := &Spreader{
		reference: reference,
		billet:    billet,
		changes:   make([]*Change, 0, refTokens.Len()),
	}

	var sb strings.Builder
	for i := 0; i < billetTokens.Len(); i++ {
		change, err := NewChange(refTokens.At(i), billetTokens.At(i))
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		s.changes = append(s.changes, change)
		sb.WriteString(change.after)
	}
	s.result = sb.String()

	return s, nil
}

// Result returns the vocalized billet.
func (s *Spreader) Result() string { return s.result }

// Reference returns the reference phrase as given.
func (s *Spreader) Reference() string { return s.reference }

// Billet returns the billet phrase as given.
func (s *Spreader) Billet() string { return s.billet }

// Changes returns the per-position changes in phrase order.
func (s *Spreader) Changes() []*Change {
	out := make([]*Change, len(s.changes))
	copy(out, s.changes)
	return out
}

// Reasons returns the rule applied at each position.
func (s *Spreader) Reasons() []Reason {
	out := make([]Reason, len(s.changes))
	for i, c := range s.changes {
		out[i] = c.reason
	}
	return out
}

// Gaps returns the positions whose skeleton pair has no rule. The billet text
// at those positions passed through unchanged.
func (s *Spreader) Gaps() []int {
	var gaps []int
	for i, c := range s.changes {
		if c.gap {
			gaps = append(gaps, i)
		}
	}
	return gaps
}

// DiagnosticReport describes every change, one per line, followed by the
// billet, the result and the reference. Result and reference lines carry a
// Cyrillic transliteration.
func (s *Spreader) DiagnosticReport() string {
	var sb strings.Builder

	for _, c := range s.changes {
		sb.WriteString(c.Diagnostic())
		sb.WriteString("\n")
	}

	sb.WriteString("before: ")
	sb.WriteString(s.billet)
	sb.WriteString("\n")

	sb.WriteString("after: ")
	sb.WriteString(s.result)
	sb.WriteString(" | cyrillization: ")
	sb.WriteString(cyrillic.Transliterate(s.result))
	sb.WriteString("\n")

	sb.WriteString("reference: ")
	sb.WriteString(s.reference)
	sb.WriteString(" | cyrillization: ")
	sb.WriteString(cyrillic.Transliterate(s.reference))

	return sb.String()
}
