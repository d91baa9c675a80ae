package types

// InstallTarget is one compiled install operation. It is created once per
// compilation and never mutated afterwards.
type InstallTarget struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`

	// Replace allows overwriting an existing destination without force
	Replace bool `json:"replace" yaml:"replace"`

	// Templating asks the executor to substitute directory variables
	Templating bool `json:"templating" yaml:"templating"`

	Category Category `json:"category" yaml:"category"`
	Package  string   `json:"package" yaml:"package"`
}
