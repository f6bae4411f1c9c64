package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"card-points/internal/shared"

	"gopkg.in/yaml.v3"
)

// Format selects how a table is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("table.ParseFormat: %q: %w", s, ErrUnknownFormat)
	}
}

// Report is a table together with its summary, for structured output.
type Report struct {
	Entries []Entry `json:"entries" yaml:"entries"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// Write encodes entries to w in the given format.
func Write(w io.Writer, f Format, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	if f == FormatText {
		return writeText(w, entries)
	}
	if err := encode(w, f, entries); err != nil {
		return fmt.Errorf("table.Write: %w", err)
	}
	return nil
}

// WriteReport writes entries followed by their summary. Text output puts the
// summary lines after a blank line; json and yaml emit a single Report.
func WriteReport(w io.Writer, f Format, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	s := Summarize(entries)
	if f == FormatText {
		if err := writeText(w, entries); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return WriteSummary(w, s)
	}
	if err := encode(w, f, Report{Entries: entries, Summary: s}); err != nil {
		return fmt.Errorf("table.WriteReport: %w", err)
	}
	return nil
}

// WriteSummary writes a summary as plain text lines, one per tier present.
// Scores that match no tier are not listed.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "count: %d\ntotal: %d\n", s.Count, s.Total); err != nil {
		return err
	}
	for _, tier := range shared.Tiers() {
		n := s.ByPoints[tier.Score]
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "points %d (%s): %d\n", tier.Score, tier.Label, n); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CARD\tPOINTS\tTIER")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", e.Card, e.Points, e.Tier)
	}
	return tw.Flush()
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}
