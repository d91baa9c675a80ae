package placer

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/placer/pkg/output"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpFuncs returns the template functions of the usage template. Styling
// is dropped entirely when plain is set.
func helpFuncs(plain bool) template.FuncMap {
	bold := func(s string) string {
		if plain {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":    bold,
		"heading": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs(output.NoColor(os.Stdout)))
}
