package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
	"github.com/pranavarora99/pagesum/fs"
	"github.com/pranavarora99/pagesum/goquery"
	pshttp "github.com/pranavarora99/pagesum/http"
	"github.com/pranavarora99/pagesum/readability"
	"github.com/pranavarora99/pagesum/rod"
	psslog "github.com/pranavarora99/pagesum/slog"
	"github.com/pranavarora99/pagesum/sqlite"
	"github.com/pranavarora99/pagesum/summarize"
	"github.com/pranavarora99/pagesum/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); PAGESUM_DB or --db override it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SummaryService pagesum.SummaryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Description("Extract structured summaries from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesum --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogLevel)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESUM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SummaryService = sqlite.NewSummaryService(m.DB)
	deps.DB = m.DB
	deps.Summaries = m.SummaryService
	deps.Sitemaps = psslog.NewLoggingSitemapService(pshttp.NewSitemapService(nil), deps.Logger)

	switch cmd {
	case "summarize":
		fetcher, err := newFetcher(cli.Summarize.Render, cli.Summarize.Timeout, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Service = newService(deps, cli.Summarize.NoEnrich)
		deps.Service.Fetcher = psslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Service.Save = cli.Summarize.Save

	case "file":
		deps.Service = newService(deps, cli.File.NoEnrich)
		deps.Service.Save = cli.File.Save

	case "batch":
		fetcher, err := newFetcher(cli.Batch.Render, cli.Batch.Timeout, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Service = newService(deps, cli.Batch.NoEnrich)
		deps.Service.Fetcher = psslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Service.RateLimiter = summarize.NewDomainLimiter(cli.Batch.Rate)
		deps.Service.Concurrency = cli.Batch.Concurrency
		deps.Service.Save = cli.Batch.Save

		if cli.Batch.Out != "" {
			deps.Writer = fs.NewWriter(cli.Batch.Out)
		}
	}

	return kongCtx.Run(deps)
}

// newService wires the extraction engine and enrichment sources.
func newService(deps *Dependencies, noEnrich bool) *summarize.Service {
	logger := deps.Logger

	engine := extract.NewExtractor(
		extract.WithParallelStages(),
		extract.WithStateFunc(func(s extract.State, err error) {
			logger.Debug("extraction state", "state", s, "err", err)
		}),
	)

	svc := &summarize.Service{
		Parser:     goquery.NewParser(),
		Summarizer: psslog.NewLoggingSummarizer(engine, logger),
		Summaries:  deps.Summaries,
		RetryLog: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		},
	}

	if !noEnrich {
		svc.Enrichers = []pagesum.MetadataExtractor{
			psslog.NewLoggingMetadataExtractor(readability.NewExtractor(), logger),
			psslog.NewLoggingMetadataExtractor(trafilatura.NewExtractor(), logger),
		}
	}

	return svc
}

// newFetcher returns a headless browser fetcher when render is set,
// otherwise a plain HTTP fetcher.
func newFetcher(render bool, timeout time.Duration, stderr io.Writer) (pagesum.Fetcher, error) {
	if !render {
		return pshttp.NewFetcher(pshttp.WithTimeout(timeout)), nil
	}

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesum.db"
	}
	dir := filepath.Join(home, ".pagesum")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesum.db")
}
