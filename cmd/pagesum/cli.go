package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/sqlite"
	"github.com/pranavarora99/pagesum/summarize"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Summaries pagesum.SummaryService
	Sitemaps  pagesum.SitemapService
	Service   *summarize.Service
	Writer    pagesum.SummaryWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"PAGESUM_DB" help:"Database path (default ~/.pagesum/pagesum.db)"`
	LogLevel string `name:"log-level" env:"PAGESUM_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Summarize SummarizeCmd `cmd:"" help:"Fetch a page and print its summary"`
	File      FileCmd      `cmd:"" help:"Summarize a local HTML file"`
	Batch     BatchCmd     `cmd:"" help:"Summarize many pages, from arguments or a sitemap"`
	List      ListCmd      `cmd:"" help:"List stored summaries"`
	Show      ShowCmd      `cmd:"" help:"Show a stored summary"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored summary"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL      string        `arg:"" help:"Page URL"`
	Render   bool          `short:"r" help:"Render the page in headless Chrome first"`
	Save     bool          `short:"s" help:"Store the summary"`
	JSON     bool          `name:"json" help:"Print the record as JSON"`
	Timeout  time.Duration `default:"15s" help:"Fetch timeout"`
	NoEnrich bool          `name:"no-enrich" help:"Skip readability/trafilatura enrichment"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path     string `arg:"" type:"existingfile" help:"HTML file"`
	URL      string `name:"url" required:"" help:"URL the file was fetched from"`
	Save     bool   `short:"s" help:"Store the summary"`
	JSON     bool   `name:"json" help:"Print the record as JSON"`
	NoEnrich bool   `name:"no-enrich" help:"Skip readability/trafilatura enrichment"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string      `arg:"" optional:"" name:"url" help:"Page URLs"`
	Sitemap     string        `help:"Site whose sitemap lists the pages"`
	Filter      []string      `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page limit"`
	Rate        float64       `default:"1" help:"Requests per second per domain (0 for unlimited)"`
	Render      bool          `short:"r" help:"Render pages in headless Chrome first"`
	Save        bool          `short:"s" help:"Store the summaries"`
	JSON        bool          `name:"json" help:"Print the records as JSON"`
	Out         string        `short:"o" name:"out" type:"path" help:"Also write each summary as markdown under this directory"`
	Timeout     time.Duration `default:"15s" help:"Per-page fetch timeout"`
	NoEnrich    bool          `name:"no-enrich" help:"Skip readability/trafilatura enrichment"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `name:"url" help:"Only summaries of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of summaries"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Summary ID"`
	JSON bool   `name:"json" help:"Print the record as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Summary ID"`
}
