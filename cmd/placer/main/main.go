package main

import (
	"os"

	"github.com/arthur-debert/placer/cmd/placer"
	"github.com/arthur-debert/placer/pkg/output"
)

func main() {
	rootCmd := placer.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r := output.NewRenderer(os.Stderr, output.FormatText, output.NoColor(os.Stderr))
		_ = r.RenderError(err)
		os.Exit(1)
	}
}
