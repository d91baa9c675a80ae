package types

// Scope selects between a system-wide and a per-user installation
type Scope string

const (
	// ScopeSystem installs under the system prefix (e.g. /usr/local)
	ScopeSystem Scope = "system"

	// ScopeUser installs under the user's home and XDG directories
	ScopeUser Scope = "user"
)

// IsSystem reports whether the scope is a system-wide installation
func (s Scope) IsSystem() bool {
	return s == ScopeSystem
}

// ScopeFromSystemFlag maps the --system flag to a Scope
func ScopeFromSystemFlag(system bool) Scope {
	if system {
		return ScopeSystem
	}
	return ScopeUser
}
