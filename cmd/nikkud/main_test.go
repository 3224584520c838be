package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/hebrewutils/core/batch"
	herrors "github.com/FocuswithJustin/hebrewutils/core/errors"
)

// runCLI parses args against the real command tree and runs the selected
// command, returning what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	parser, err := kong.New(&CLI, kong.Name("nikkud"), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	if err := configureLogging(CLI.LogLevel, CLI.LogFormat); err != nil {
		return "", err
	}
	err = ctx.Run()
	return buf.String(), err
}

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

const testPairs = `[Gen.1.1] בְּרֵאשִׁית | בראשית
מִצְוָה | מצווה
`

func TestSpreadCmd(t *testing.T) {
	out, err := runCLI(t, "spread", "מִצְוָה", "מצווה")
	if err != nil {
		t.Fatalf("spread error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "מִצְווָה" {
		t.Errorf("spread printed %q", got)
	}
}

func TestSpreadCmdReport(t *testing.T) {
	out, err := runCLI(t, "spread", "--report", "מִצְוָה", "מצווה")
	if err != nil {
		t.Fatalf("spread error = %v", err)
	}
	if !strings.Contains(out, "VAV_TO_VAVVAV | before: ") || !strings.Contains(out, "| cyrillization: ") {
		t.Errorf("report output:\n%s", out)
	}
}

func TestSpreadCmdIncompatible(t *testing.T) {
	_, err := runCLI(t, "spread", "דָּוִד", "דוד דוד")
	if err == nil || !strings.Contains(err.Error(), "unable to spread diacritics") {
		t.Errorf("spread error = %v", err)
	}
}

func TestVerseCmd(t *testing.T) {
	dir := t.TempDir()
	source := createTestFile(t, dir, "gen.txt", "Gen.1.1 בְּ/רֵאשִׁית בָּרָא\n")

	out, err := runCLI(t, "verse", "--source", source, "--ref", "Gen.1.1", "בראשית ברא")
	if err != nil {
		t.Fatalf("verse error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "בְּרֵאשִׁית בָּרָא" {
		t.Errorf("verse printed %q", got)
	}

	if _, err := runCLI(t, "verse", "--source", source, "--ref", "Gen.1.2", "בראשית"); err == nil {
		t.Error("missing verse should fail")
	}
}

func TestBatchAndGoldenCheck(t *testing.T) {
	dir := t.TempDir()
	pairs := createTestFile(t, dir, "pairs.txt", testPairs)
	report := filepath.Join(dir, "golden.json.xz")
	db := filepath.Join(dir, "runs.db")

	t.Setenv("NIKKUD_WORKERS", "2")
	out, err := runCLI(t, "batch", pairs, "--out", report, "--db", db)
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if !strings.Contains(out, "2 pairs, 0 failed, 0 gaps") {
		t.Errorf("batch printed %q", out)
	}
	if CLI.Batch.Workers != 2 {
		t.Errorf("NIKKUD_WORKERS not applied: %d", CLI.Batch.Workers)
	}

	saved, err := batch.ReadReport(report)
	if err != nil {
		t.Fatalf("ReadReport() error = %v", err)
	}
	if len(saved.Entries) != 2 {
		t.Errorf("report has %d entries", len(saved.Entries))
	}

	out, err = runCLI(t, "golden", "check", pairs, report)
	if err != nil {
		t.Fatalf("golden check error = %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "OK 2 entries match") {
		t.Errorf("golden check printed %q", out)
	}

	changed := createTestFile(t, dir, "changed.txt", "[Gen.1.1] בְּרֵאשִׁית | בראשית\nמִצְוֹה | מצווה\n")
	out, err = runCLI(t, "golden", "check", changed, report)
	if err == nil {
		t.Fatal("golden check should fail on a changed result")
	}
	if !strings.Contains(out, "MISMATCH #1 line 2") {
		t.Errorf("golden check printed %q", out)
	}

	out, err = runCLI(t, "runs", "list", "--db", db)
	if err != nil {
		t.Fatalf("runs list error = %v", err)
	}
	if !strings.Contains(out, saved.RunID) || !strings.HasPrefix(out, "RUN") {
		t.Errorf("runs list printed %q", out)
	}

	out, err = runCLI(t, "runs", "show", saved.RunID, "--db", db)
	if err != nil {
		t.Fatalf("runs show error = %v", err)
	}
	for _, want := range []string{"run " + saved.RunID + ": " + pairs, "Gen.1.1\tבְּרֵאשִׁית\n", "line 2\tמִצְווָה\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("runs show missing %q:\n%s", want, out)
		}
	}

	exported := filepath.Join(dir, "exported.json")
	out, err = runCLI(t, "runs", "show", "--report", "--out", exported, saved.RunID, "--db", db)
	if err != nil {
		t.Fatalf("runs show --out error = %v", err)
	}
	if !strings.Contains(out, "VAV_TO_VAVVAV | before: ") {
		t.Errorf("runs show --report printed %q", out)
	}
	back, err := batch.ReadReport(exported)
	if err != nil {
		t.Fatalf("ReadReport() error = %v", err)
	}
	if back.Digest != saved.Digest || !back.Verify() || len(batch.Compare(saved, back)) != 0 {
		t.Errorf("exported run differs from the batch report: %+v", back)
	}

	_, err = runCLI(t, "runs", "show", "no-such-run", "--db", db)
	if !errors.Is(err, herrors.ErrNotFound) {
		t.Errorf("runs show unknown id error = %v, want ErrNotFound", err)
	}
}

func TestBatchReportsFailures(t *testing.T) {
	dir := t.TempDir()
	pairs := createTestFile(t, dir, "pairs.txt", "שלה | שלום\n")

	out, err := runCLI(t, "batch", pairs)
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if !strings.Contains(out, "FAIL line 1: token 2") || !strings.Contains(out, "1 failed") {
		t.Errorf("batch printed %q", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "nikkud version "+version) {
		t.Errorf("version printed %q", out)
	}
}

func TestConfigureLogging(t *testing.T) {
	if err := configureLogging("debug", "text"); err != nil {
		t.Errorf("valid flags rejected: %v", err)
	}
	if err := configureLogging("loud", "json"); err == nil {
		t.Error("unknown level accepted")
	}
	if err := configureLogging("info", "xml"); err == nil {
		t.Error("unknown format accepted")
	}
	configureLogging("info", "json")
}
