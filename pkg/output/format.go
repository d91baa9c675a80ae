package output

import (
	"os"
	"strings"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how results are written
type Format string

const (
	// FormatText renders tables for humans
	FormatText Format = "text"
	// FormatJSON renders machine-readable JSON
	FormatJSON Format = "json"
	// FormatYAML renders machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formats lists the accepted values of --format
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a --format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s).
		WithDetail("format", s)
}

// NoColor reports whether styling should be disabled for the given output
func NoColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return true
	}
	return termenv.NewOutput(f).Profile == termenv.Ascii
}
