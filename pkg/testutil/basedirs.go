package testutil

import "github.com/arthur-debert/placer/pkg/dirs"

// FakeBaseDirectories is a dirs.BaseDirectories with fixed values.
// A non-nil RuntimeErr is returned by RuntimeDir.
type FakeBaseDirectories struct {
	HomeDir    string
	DataDir    string
	ConfigDir  string
	Runtime    string
	RuntimeErr error

	// RuntimeCalls counts RuntimeDir invocations
	RuntimeCalls int
}

var _ dirs.BaseDirectories = (*FakeBaseDirectories)(nil)

// NewFakeBaseDirectories returns base directories for a user "alice"
func NewFakeBaseDirectories() *FakeBaseDirectories {
	return &FakeBaseDirectories{
		HomeDir:   "/home/alice",
		DataDir:   "/home/alice/.local/share",
		ConfigDir: "/home/alice/.config",
		Runtime:   "/run/user/1000",
	}
}

func (f *FakeBaseDirectories) Home() (string, error)       { return f.HomeDir, nil }
func (f *FakeBaseDirectories) DataHome() (string, error)   { return f.DataDir, nil }
func (f *FakeBaseDirectories) ConfigHome() (string, error) { return f.ConfigDir, nil }

func (f *FakeBaseDirectories) RuntimeDir() (string, error) {
	f.RuntimeCalls++
	if f.RuntimeErr != nil {
		return "", f.RuntimeErr
	}
	return f.Runtime, nil
}
