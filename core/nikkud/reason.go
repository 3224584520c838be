package nikkud

// Reason names the rewrite rule chosen for one aligned group pair.
type Reason int

const (
	Regular Reason = iota
	VavToNull
	YudToNull
	NullToYud
	YudYudToYud
	NullToYudYud
	YudToYudYud
	VavToYudVav
	YudToYudVav
	VavYudToYudVavYud
	YudVavToYudVavYud
	VavVavToYudVavVav
	VavYudToVavVavYud
	VavToYudVavVav
	YudVavVavToYudVavYudVav
	YudVavVavYudToYudVavYud
	NullToVav
	VavVavToVav
	YudVavToVav
	NullToVavVav
	VavToVavVav
	YudToVavYudYud
	YudToVavYud
	YudVavToVavYudVav
	YudVavToVavVavYud
	VavToVavVavYud
	VavYudVavToVavVavYudVav
	VavYudYudToVavVavYudYud
	VavYudToVavVavYudYud
	VavVavYudToVavVavYudYud
	Other
)

// reasonDefs pairs every named rule with the reference and billet skeletons
// that select it. Other has no entry: it is what Resolve returns when no pair
// matches.
var reasonDefs = []struct {
	reason   Reason
	name     string
	from, to Sequence
}{
	{Regular, "REGULAR", SeqNull, SeqNull},
	{VavToNull, "VAV_TO_NULL", SeqVav, SeqNull},
	{YudToNull, "YUD_TO_NULL", SeqYud, SeqNull},
	{NullToYud, "NULL_TO_YUD", SeqNull, SeqYud},
	{YudYudToYud, "YUDYUD_TO_YUD", SeqYudYud, SeqYud},
	{NullToYudYud, "NULL_TO_YUDYUD", SeqNull, SeqYudYud},
	{YudToYudYud, "YUD_TO_YUDYUD", SeqYud, SeqYudYud},
	{VavToYudVav, "VAV_TO_YUDVAV", SeqVav, SeqYudVav},
	{YudToYudVav, "YUD_TO_YUDVAV", SeqYud, SeqYudVav},
	{VavYudToYudVavYud, "VAVYUD_TO_YUDVAVYUD", SeqVavYud, SeqYudVavYud},
	{YudVavToYudVavYud, "YUDVAV_TO_YUDVAVYUD", SeqYudVav, SeqYudVavYud},
	{VavVavToYudVavVav, "VAVVAV_TO_YUDVAVVAV", SeqVavVav, SeqYudVavVav},
	{VavYudToVavVavYud, "VAVYUD_TO_VAVVAVYUD", SeqVavYud, SeqVavVavYud},
	{VavToYudVavVav, "VAV_TO_YUDVAVVAV", SeqVav, SeqYudVavVav},
	{YudVavVavToYudVavYudVav, "YUDVAVVAV_TO_YUDVAVYUDVAV", SeqYudVavVav, SeqYudVavYudVav},
	{YudVavVavYudToYudVavYud, "YUDVAVVAVYUD_TO_YUDVAVYUD", SeqYudVavVavYud, SeqYudVavYud},
	{NullToVav, "NULL_TO_VAV", SeqNull, SeqVav},
	{VavVavToVav, "VAVVAV_TO_VAV", SeqVavVav, SeqVav},
	{YudVavToVav, "YUDVAV_TO_VAV", SeqYudVav, SeqVav},
	{NullToVavVav, "NULL_TO_VAVVAV", SeqNull, SeqVavVav},
	{VavToVavVav, "VAV_TO_VAVVAV", SeqVav, SeqVavVav},
	{YudToVavYudYud, "YUD_TO_VAVYUDYUD", SeqYud, SeqVavYudYud},
	{YudToVavYud, "YUD_TO_VAVYUD", SeqYud, SeqVavYud},
	{YudVavToVavYudVav, "YUDVAV_TO_VAVYUDVAV", SeqYudVav, SeqVavYudVav},
	{YudVavToVavVavYud, "YUDVAV_TO_VAVVAVYUD", SeqYudVav, SeqVavVavYud},
	{VavToVavVavYud, "VAV_TO_VAVVAVYUD", SeqVav, SeqVavVavYud},
	{VavYudVavToVavVavYudVav, "VAVYUDVAV_TO_VAVVAVYUDVAV", SeqVavYudVav, SeqVavVavYudVav},
	{VavYudYudToVavVavYudYud, "VAVYUDYUD_TO_VAVVAVYUDYUD", SeqVavYudYud, SeqVavVavYudYud},
	{VavYudToVavVavYudYud, "VAVYUD_TO_VAVVAVYUDYUD", SeqVavYud, SeqVavVavYudYud},
	{VavVavYudToVavVavYudYud, "VAVVAVYUD_TO_VAVVAVYUDYUD", SeqVavVavYud, SeqVavVavYudYud},
}

type sequencePair struct {
	from, to Sequence
}

var (
	reasonByPair = make(map[sequencePair]Reason, len(reasonDefs))
	reasonNames  = make(map[Reason]string, len(reasonDefs)+1)
)

func init() {
	for _, def := range reasonDefs {
		reasonByPair[sequencePair{def.from, def.to}] = def.reason
		reasonNames[def.reason] = def.name
	}
	reasonNames[Other] = "OTHER"
}

// Resolve returns the rule for a reference skeleton and a billet skeleton.
// It is total: pairs without a rule resolve to Other.
func Resolve(from, to Sequence) Reason {
	if r, ok := reasonByPair[sequencePair{from, to}]; ok {
		return r
	}
	return Other
}

// String returns the rule name as it appears in diagnostics.
func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "OTHER"
}

// Reasons lists every Reason in declaration order, Other last.
func Reasons() []Reason {
	out := make([]Reason, 0, len(reasonDefs)+1)
	for _, def := range reasonDefs {
		out = append(out, def.reason)
	}
	return append(out, Other)
}
