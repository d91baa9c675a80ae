package testutil

import (
	"context"
	"strings"

	"github.com/arthur-debert/placer/pkg/project"
)

// FakeRunner is a project.CommandRunner returning canned output
type FakeRunner struct {
	Output []byte
	Err    error

	// Calls records each invocation as "dir: name args..."
	Calls []string
}

var _ project.CommandRunner = (*FakeRunner)(nil)

func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, dir+": "+strings.Join(append([]string{name}, args...), " "))
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Output, nil
}
