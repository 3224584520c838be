package nikkud

import (
	"fmt"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
	"github.com/FocuswithJustin/hebrewutils/core/hebrew"
)

// Change is the outcome of aligning one reference group with one billet
// group. It holds text only; the working mark sets used to build it are
// discarded once it is constructed.
type Change struct {
	reason Reason
	from   Sequence
	to     Sequence
	gap    bool

	before             string
	beforeBracketed    string
	after              string
	afterBracketed     string
	reference          string
	referenceBracketed string
}

// NewChange spreads the marks of one merged reference token onto the billet
// token at the same position. It fails with an IncompatibleInputError when
// the billet group is Hebrew and its leading consonant differs from the
// reference's.
func NewChange(referenceToken, billetToken Token) (*Change, error) {
	refList := Tokenize(referenceToken.text, Separated)
	billetList := Tokenize(billetToken.text, Separated)
	if refList.Len() == 0 || billetList.Len() == 0 {
		return nil, errors.NewIncompatibleInput(referenceToken.text, billetToken.text, "empty token")
	}

	refHead, billetHead := refList.At(0), billetList.At(0)
	if billetHead.hebrew && billetHead.root != refHead.root {
		return nil, errors.NewIncompatibleInput(refHead.root, billetHead.root, "")
	}

	c := &Change{
		before:             billetList.String(),
		beforeBracketed:    billetList.Bracketed(),
		reference:          refList.String(),
		referenceBracketed: refList.Bracketed(),
	}

	refPlain := hebrew.StripDiacritics(refList.Source())
	c.from = ClassifyGroup(refPlain)
	c.to = ClassifyGroup(billetList.Source())
	c.reason = Resolve(c.from, c.to)

	if refPlain == billetList.Source() {
		c.reason = Regular
		c.after = referenceToken.text
		c.afterBracketed = referenceToken.Bracketed()
		return c, nil
	}

	r, ok := rules[c.reason]
	if !ok {
		// Regular at skeleton level (marks differ but no vav/yud moved) and
		// Other both leave the billet as it is.
		c.gap = c.reason == Other
		c.after = c.before
		c.afterBracketed = c.beforeBracketed
		return c, nil
	}

	c.after, c.afterBracketed = render(billetList.tokens, r.apply(refList.tokens, billetList.tokens))
	return c, nil
}

// Reason returns the rule that produced this change.
func (c *Change) Reason() Reason { return c.reason }

// From returns the reference skeleton.
func (c *Change) From() Sequence { return c.from }

// To returns the billet skeleton.
func (c *Change) To() Sequence { return c.to }

// Gap reports whether the skeleton pair has no rule, so the billet group was
// passed through unchanged.
func (c *Change) Gap() bool { return c.gap }

// Before returns the billet group as rendered before spreading.
func (c *Change) Before() string { return c.before }

// After returns the vocalized billet group.
func (c *Change) After() string { return c.after }

// Reference returns the reference group as rendered.
func (c *Change) Reference() string { return c.reference }

// Diagnostic returns the one-line description of this change used by
// Spreader.DiagnosticReport.
func (c *Change) Diagnostic() string {
	return fmt.Sprintf("%s | before: \"%s\" (%s) | after: \"%s\" (%s) | reference: \"%s\" (%s)",
		c.reason,
		c.before, c.beforeBracketed,
		c.after, c.afterBracketed,
		c.reference, c.referenceBracketed)
}
