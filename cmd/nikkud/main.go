// Command nikkud spreads Hebrew vowel points from a vocalized reference
// phrase onto an unpointed or differently spelled billet.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/hebrewutils/core/batch"
	"github.com/FocuswithJustin/hebrewutils/core/corpus"
	"github.com/FocuswithJustin/hebrewutils/core/nikkud"
	"github.com/FocuswithJustin/hebrewutils/core/sqlite"
	"github.com/FocuswithJustin/hebrewutils/internal/logging"
)

const version = "0.1.0"

// stdout receives command output; logs go to stderr.
var stdout io.Writer = os.Stdout

// CLI defines the command-line interface for nikkud.
var CLI struct {
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info" env:"NIKKUD_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format" enum:"json,text" default:"json" env:"NIKKUD_LOG_FORMAT"`

	Spread  SpreadCmd   `cmd:"" help:"Spread the points of a reference phrase onto a billet"`
	Verse   VerseCmd    `cmd:"" help:"Spread a verse from a verse source onto a billet"`
	Batch   BatchCmd    `cmd:"" help:"Spread every pair of a pair file"`
	Golden  GoldenGroup `cmd:"" help:"Golden report operations"`
	Runs    RunsGroup   `cmd:"" help:"Stored batch runs"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// GoldenGroup contains golden report operations.
type GoldenGroup struct {
	Check GoldenCheckCmd `cmd:"" help:"Re-run a pair file and compare against a saved report"`
}

// RunsGroup contains stored run operations.
type RunsGroup struct {
	List RunsListCmd `cmd:"" help:"List batch runs stored in a database"`
	Show RunsShowCmd `cmd:"" help:"Print one stored batch run"`
}

// SpreadCmd spreads one pair given on the command line.
type SpreadCmd struct {
	Reference string `arg:"" help:"Vocalized reference phrase"`
	Billet    string `arg:"" help:"Phrase to vocalize"`
	Report    bool   `help:"Print the diagnostic report instead of the result"`
}

func (c *SpreadCmd) Run() error {
	return spread(c.Reference, c.Billet, c.Report)
}

// VerseCmd takes the reference phrase from a verse source.
type VerseCmd struct {
	Source string `required:"" help:"OSHB text or OSIS XML file (.xz allowed)" type:"existingfile"`
	Ref    string `required:"" name:"ref" help:"Verse reference, e.g. Gen.1.1"`
	Billet string `arg:"" help:"Phrase to vocalize"`
	Report bool   `help:"Print the diagnostic report instead of the result"`
}

func (c *VerseCmd) Run() error {
	ref, err := corpus.ParseRef(c.Ref)
	if err != nil {
		return err
	}
	verses, err := corpus.LoadVerses(c.Source)
	if err != nil {
		return err
	}
	logging.Debug("verse source loaded", "source", verses.String())

	reference, err := verses.Verse(ref)
	if err != nil {
		return err
	}
	return spread(reference, c.Billet, c.Report)
}

func spread(reference, billet string, report bool) error {
	start := time.Now()
	s, err := nikkud.New(reference, billet)
	if err != nil {
		return err
	}
	logging.SpreadEvent(context.Background(), "cli", len(s.Changes()), len(s.Gaps()), time.Since(start))

	if report {
		fmt.Fprintln(stdout, s.DiagnosticReport())
		return nil
	}
	fmt.Fprintln(stdout, s.Result())
	return nil
}

// BatchCmd spreads a pair file and optionally saves the report.
type BatchCmd struct {
	Pairs   string `arg:"" help:"Pair file (.xz allowed)" type:"existingfile"`
	Out     string `help:"Write the report here (.json or .json.xz)" type:"path"`
	DB      string `name:"db" help:"Store the run in this SQLite database" type:"path" env:"NIKKUD_DB"`
	Workers int    `help:"Concurrent spreads, 0 for one per CPU" default:"0" env:"NIKKUD_WORKERS"`
}

func (c *BatchCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := runPairs(ctx, c.Pairs, c.Workers)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := batch.WriteReport(c.Out, report); err != nil {
			return err
		}
		logging.Info("report written", "path", c.Out)
	}
	if c.DB != "" {
		store, err := batch.OpenStore(c.DB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, report); err != nil {
			return err
		}
		logging.InfoContext(logging.WithRunID(ctx, report.RunID), "run stored", "db", c.DB, "driver", sqlite.DriverType())
	}

	for _, e := range report.Entries {
		if e.Failed() {
			fmt.Fprintf(stdout, "FAIL %s: %s\n", e.Label, e.Error)
		}
	}
	fmt.Fprintf(stdout, "run %s: %d pairs, %d failed, %d gaps, blake3 %s\n",
		report.RunID, report.Pairs, report.Failed, report.Gaps, report.Digest)
	return nil
}

func runPairs(ctx context.Context, path string, workers int) (*batch.Report, error) {
	pairs, err := corpus.LoadPairs(path)
	if err != nil {
		return nil, err
	}
	return batch.NewRunner(workers).Run(ctx, path, pairs)
}

// GoldenCheckCmd re-runs a pair file and compares it with a saved report.
type GoldenCheckCmd struct {
	Pairs   string `arg:"" help:"Pair file (.xz allowed)" type:"existingfile"`
	Report  string `arg:"" help:"Golden report (.json or .json.xz)" type:"existingfile"`
	Workers int    `help:"Concurrent spreads, 0 for one per CPU" default:"0" env:"NIKKUD_WORKERS"`
}

func (c *GoldenCheckCmd) Run() error {
	golden, err := batch.ReadReport(c.Report)
	if err != nil {
		return err
	}
	if !golden.Verify() {
		return fmt.Errorf("golden report %s fails its own digest check", c.Report)
	}

	current, err := runPairs(context.Background(), c.Pairs, c.Workers)
	if err != nil {
		return err
	}

	ctx := logging.WithRunID(context.Background(), current.RunID)
	mismatches := batch.Compare(golden, current)
	for _, m := range mismatches {
		logging.WarnContext(ctx, "golden mismatch", "index", m.Index, "label", m.Label, "detail", m.Detail)
		fmt.Fprintln(stdout, "MISMATCH", m.String())
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d of %d entries differ from golden report", len(mismatches), len(golden.Entries))
	}
	fmt.Fprintf(stdout, "OK %d entries match, blake3 %s\n", len(current.Entries), current.Digest)
	return nil
}

// RunsListCmd lists stored runs.
type RunsListCmd struct {
	DB string `name:"db" required:"" help:"SQLite database written by batch --db" type:"existingfile" env:"NIKKUD_DB"`
}

func (c *RunsListCmd) Run() error {
	store, err := batch.OpenStoreReadOnly(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCREATED\tSOURCE\tPAIRS\tFAILED\tGAPS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Source, r.Pairs, r.Failed, r.Gaps)
	}
	return w.Flush()
}

// RunsShowCmd prints the entries of one stored run.
type RunsShowCmd struct {
	ID     string `arg:"" help:"Run id as printed by batch or runs list"`
	DB     string `name:"db" required:"" help:"SQLite database written by batch --db" type:"existingfile" env:"NIKKUD_DB"`
	Report bool   `help:"Print each entry's diagnostic report instead of its result"`
	Out    string `help:"Also export the run as a report file (.json or .json.xz)" type:"path"`
}

func (c *RunsShowCmd) Run() error {
	store, err := batch.OpenStoreReadOnly(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Load(context.Background(), c.ID)
	if err != nil {
		return err
	}
	if !run.Verify() {
		logging.Warn("stored run fails its digest check", "run_id", run.RunID, "db", c.DB)
	}

	fmt.Fprintf(stdout, "run %s: %s, %s, %d pairs, %d failed, %d gaps, blake3 %s\n",
		run.RunID, run.Source, run.CreatedAt.Format(time.RFC3339), run.Pairs, run.Failed, run.Gaps, run.Digest)
	for _, e := range run.Entries {
		switch {
		case e.Failed():
			fmt.Fprintf(stdout, "FAIL %s: %s\n", e.Label, e.Error)
		case c.Report:
			fmt.Fprintf(stdout, "%s\n%s\n", e.Label, e.Report)
		default:
			fmt.Fprintf(stdout, "%s\t%s\n", e.Label, e.Result)
		}
	}

	if c.Out != "" {
		return batch.WriteReport(c.Out, run)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "nikkud version %s (sqlite %s)\n", version, info.DriverType)
	return nil
}

// configureLogging applies the global log flags.
func configureLogging(level, format string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(format)
	if err != nil {
		return err
	}
	logging.InitLogger(lvl, logFormat)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nikkud"),
		kong.Description("Spread Hebrew vowel points from a reference phrase onto a billet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(configureLogging(CLI.LogLevel, CLI.LogFormat))
	err := ctx.Run()
	if err != nil {
		logging.Error("command failed", "command", ctx.Command(), "error", err.Error())
	}
	ctx.FatalIfErrorf(err)
}
