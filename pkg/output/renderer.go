package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/placer/pkg/core"
	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Renderer writes plans, directory sets and errors in one Format.
//
// Text output is styled with lipgloss and laid out with pterm tables.
// When noColor is set, the lipgloss profile is forced to ASCII and pterm
// styles are replaced by empty ones, so the output carries no escape codes.
type Renderer struct {
	writer  io.Writer
	format  Format
	noColor bool
	styles  styles
}

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	log := logging.GetLogger("output.Renderer")

	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}

	log.Debug().
		Str("format", string(format)).
		Bool("noColor", noColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("colorProfile", fmt.Sprintf("%v", lg.ColorProfile())).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		format:  format,
		noColor: noColor,
		styles:  newStyles(lg),
	}
}

// RenderPlan writes the install targets of a planning run
func (r *Renderer) RenderPlan(result *core.PlanResult) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatYAML:
		return r.renderYAML(result)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		r.styles.Heading.Render("Scope:"), string(result.Scope),
		r.styles.Heading.Render("Manifest version:"), result.Version)

	for _, pkg := range result.Packages {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n",
			r.styles.Package.Render(pkg.Name),
			r.styles.Muted.Render(fmt.Sprintf("(%s, %s)", pkg.Type, pkg.Project.ProjectDir)))

		if len(pkg.Targets) == 0 {
			b.WriteString(r.styles.Muted.Render("  nothing to install"))
			b.WriteString("\n")
			continue
		}

		table, err := r.targetTable(pkg.Targets)
		if err != nil {
			return err
		}
		b.WriteString(table)
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range result.Warnings {
			b.WriteString(r.styles.Warning.Render("warning: " + w))
			b.WriteString("\n")
		}
	}

	return r.write(b.String())
}

// RenderDirs writes a resolved directory set
func (r *Renderer) RenderDirs(scope types.Scope, d dirs.DirectorySet) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(d)
	case FormatYAML:
		return r.renderYAML(d)
	}

	data := [][]string{{"DIRECTORY", "PATH"}}
	for _, e := range d.Entries() {
		data = append(data, []string{string(e.Name), r.styles.Destination.Render(e.Value)})
	}

	table, err := tablePrinter(r.noColor).WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render directory table")
	}

	header := fmt.Sprintf("%s %s\n", r.styles.Heading.Render("Scope:"), string(scope))
	return r.write(header + table + "\n")
}

// RenderError writes an error. Coded errors keep their code in structured
// formats.
func (r *Renderer) RenderError(err error) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		obj := errorObject{
			Error:   err.Error(),
			Code:    string(errors.GetErrorCode(err)),
			Details: errors.GetErrorDetails(err),
		}
		if r.format == FormatJSON {
			return r.renderJSON(obj)
		}
		return r.renderYAML(obj)
	}
	return r.write(r.styles.Error.Render("Error: "+err.Error()) + "\n")
}

type errorObject struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

func (r *Renderer) targetTable(targets []types.InstallTarget) (string, error) {
	data := [][]string{{"CATEGORY", "SOURCE", "DESTINATION", "FLAGS"}}
	for _, t := range targets {
		data = append(data, []string{
			r.styles.Category.Render(string(t.Category)),
			t.Source,
			r.styles.Destination.Render(t.Destination),
			targetFlags(t),
		})
	}

	table, err := tablePrinter(r.noColor).WithData(data).Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render target table")
	}
	return table + "\n", nil
}

// targetFlags summarizes the policy bits of a target
func targetFlags(t types.InstallTarget) string {
	var flags []string
	if t.Replace {
		flags = append(flags, "replace")
	}
	if t.Templating {
		flags = append(flags, "template")
	}
	return strings.Join(flags, ",")
}

func (r *Renderer) renderJSON(v interface{}) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write JSON output")
	}
	return nil
}

func (r *Renderer) renderYAML(v interface{}) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write YAML output")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write YAML output")
	}
	return nil
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.writer, s); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write output")
	}
	return nil
}
