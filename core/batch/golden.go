package batch

import "fmt"

// Mismatch is one entry whose output differs from the golden report.
type Mismatch struct {
	Index  int
	Label  string
	Want   string
	Got    string
	Detail string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("#%d %s: %s", m.Index, m.Label, m.Detail)
}

// Compare checks current against golden entry by entry. Entries are matched
// by position; a differing label or digest is a mismatch, as is an entry
// present on only one side. Run ids and timestamps are ignored.
func Compare(golden, current *Report) []Mismatch {
	var out []Mismatch

	n := max(len(golden.Entries), len(current.Entries))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(current.Entries):
			g := golden.Entries[i]
			out = append(out, Mismatch{Index: i, Label: g.Label, Want: g.Digest, Detail: "missing from current run"})
		case i >= len(golden.Entries):
			c := current.Entries[i]
			out = append(out, Mismatch{Index: i, Label: c.Label, Got: c.Digest, Detail: "not in golden report"})
		default:
			g, c := golden.Entries[i], current.Entries[i]
			if g.Label != c.Label {
				out = append(out, Mismatch{Index: i, Label: c.Label, Want: g.Label, Got: c.Label, Detail: "label changed from " + g.Label})
				continue
			}
			if g.Digest != c.Digest {
				out = append(out, Mismatch{Index: i, Label: c.Label, Want: g.Digest, Got: c.Digest, Detail: describe(g, c)})
			}
		}
	}
	return out
}

func describe(g, c Entry) string {
	switch {
	case g.Failed() != c.Failed():
		if c.Failed() {
			return "now fails: " + c.Error
		}
		return "no longer fails, result " + c.Result
	case g.Result != c.Result:
		return fmt.Sprintf("result %q, golden %q", c.Result, g.Result)
	default:
		return "diagnostics changed"
	}
}
