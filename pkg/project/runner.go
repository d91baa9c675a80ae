package project

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
)

// CommandRunner runs an external command in dir and returns its stdout
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner returns a runner with a one minute timeout
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: time.Minute}
}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	logger := logging.GetLogger("project.exec")

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	logging.LogCommand(dir, path, args)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	if err := dropPrivileges(cmd); err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Debug().
			Err(err).
			Str("command", name).
			Str("stderr", stderr.String()).
			Msg("Command execution failed")
		return nil, errors.Wrapf(err, errors.ErrExternalResolution, "%s %s failed: %s",
			name, strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
