// Package output renders planning results for the command line.
//
// Three formats are supported. FormatText prints one pterm table per
// package, styled with lipgloss; FormatJSON and FormatYAML serialize the
// result types of pkg/core directly so scripts and packaging tools can
// consume them. Errors are rendered in the same format as results.
package output
