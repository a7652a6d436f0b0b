package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pranavarora99/pagesum"
)

// writeRecord prints rec as indented JSON or as formatted text.
func writeRecord(w io.Writer, rec *pagesum.SummaryRecord, asJSON bool) error {
	if asJSON {
		return writeJSON(w, rec)
	}

	fmt.Fprintln(w, pagesum.FormatSummary(rec.Summary))
	if rec.ID != "" {
		fmt.Fprintf(w, "\nID: %s\n", rec.ID)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
