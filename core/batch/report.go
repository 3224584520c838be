// Package batch spreads many reference/billet pairs at once and keeps the
// outcome as a digestible, comparable report.
package batch

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
)

// Entry is the outcome of one pair.
type Entry struct {
	Index     int      `json:"index"`
	Label     string   `json:"label"`
	Reference string   `json:"reference"`
	Billet    string   `json:"billet"`
	Result    string   `json:"result,omitempty"`
	Reasons   []string `json:"reasons,omitempty"`
	Gaps      []int    `json:"gaps,omitempty"`
	Report    string   `json:"report,omitempty"`
	Error     string   `json:"error,omitempty"`
	Digest    string   `json:"blake3"`
}

// Failed reports whether the pair could not be spread.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Report is the outcome of one batch run.
type Report struct {
	RunID     string    `json:"run_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Pairs     int       `json:"pairs"`
	Failed    int       `json:"failed"`
	Gaps      int       `json:"gaps"`
	Digest    string    `json:"blake3"`
	Entries   []Entry   `json:"entries"`
}

// entryDigest hashes what a pair produced: the result and diagnostic report
// on success, the error text on failure.
func entryDigest(e *Entry) string {
	h := blake3.New()
	if e.Failed() {
		io.WriteString(h, "error\n")
		io.WriteString(h, e.Error)
	} else {
		io.WriteString(h, e.Result)
		io.WriteString(h, "\n")
		io.WriteString(h, e.Report)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// summarize fills the counters and the aggregate digest from the entries.
// The aggregate covers entry digests in order, so it is independent of run
// id, time and worker count.
func (r *Report) summarize() {
	h := blake3.New()
	r.Pairs = len(r.Entries)
	r.Failed, r.Gaps = 0, 0
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Failed() {
			r.Failed++
		}
		r.Gaps += len(e.Gaps)
		io.WriteString(h, e.Digest)
		io.WriteString(h, "\n")
	}
	r.Digest = hex.EncodeToString(h.Sum(nil))
}

// Verify recomputes every digest and reports whether the stored ones match.
func (r *Report) Verify() bool {
	for i := range r.Entries {
		if entryDigest(&r.Entries[i]) != r.Entries[i].Digest {
			return false
		}
	}
	stored := r.Digest
	check := *r
	check.summarize()
	return check.Digest == stored
}

func isXZ(path string) bool {
	return strings.HasSuffix(path, ".xz")
}

// WriteReport writes r as indented JSON, xz-compressed when path ends in
// ".xz". The file is written to a temporary name and renamed into place.
func WriteReport(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	var w io.Writer = tmp
	var xzw *xz.Writer
	if isXZ(path) {
		xzw, err = xz.NewWriter(tmp)
		if err != nil {
			tmp.Close()
			return errors.NewIO("compress", path, err)
		}
		w = xzw
	}

	if _, err := w.Write(data); err != nil {
		tmp.Close()
		return errors.NewIO("write", path, err)
	}
	if xzw != nil {
		if err := xzw.Close(); err != nil {
			tmp.Close()
			return errors.NewIO("compress", path, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return errors.NewIO("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.NewIO("rename", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var rd io.Reader = f
	if isXZ(path) {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		rd = xzr
	}

	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, errors.NewParse("report", path, 0, err.Error())
	}
	return &r, nil
}
