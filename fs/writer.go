// Package fs exports summaries as markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pranavarora99/pagesum"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "URL has no host: %s", rawURL)
	}

	host := strings.ToLower(u.Host)
	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return host + "/index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return host + "/" + path + "index.md", nil
	}

	return host + "/" + path + ".md", nil
}

// FormatRecord formats a stored summary with YAML frontmatter.
func FormatRecord(rec *pagesum.SummaryRecord) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rec.URL)
	fmt.Fprintf(&b, "\ntitle: %q", rec.Summary.Title)
	if rec.ID != "" {
		b.WriteString("\nid: ")
		b.WriteString(rec.ID)
	}
	if !rec.CreatedAt.IsZero() {
		b.WriteString("\nsummarized: ")
		b.WriteString(rec.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(pagesum.FormatSummary(rec.Summary))
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements pagesum.SummaryWriter at compile time.
var _ pagesum.SummaryWriter = (*Writer)(nil)

// Writer writes summaries as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSummary writes a summary to disk, replacing any earlier file for
// the same URL.
func (w *Writer) WriteSummary(ctx context.Context, rec *pagesum.SummaryRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(rec.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatRecord(rec)), 0644)
}
