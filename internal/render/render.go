// Package render writes dashboard reports as styled terminal output,
// Markdown, CSV, or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
)

// ErrUnknownFormat is returned for an output format name that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatTerminal Format = "terminal"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTerminal, FormatMarkdown, FormatCSV, FormatJSON}
}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes r to w in format f.
func Render(w io.Writer, f Format, r *dashboard.Report) error {
	if r == nil {
		return errors.New("render: nil report")
	}
	switch f {
	case FormatTerminal:
		return Terminal(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatCSV:
		return CSV(w, r)
	case FormatJSON:
		return JSON(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r *dashboard.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
