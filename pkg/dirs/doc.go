// Package dirs builds the set of installation directories for one run.
//
// A DirectorySet starts from one of two fixed default tables (system or
// user scope), receives per-field overrides from configuration and flags,
// and is then resolved: every @name@ placeholder is replaced by applying a
// fixed, ordered list of rewrite steps. Each step substitutes the value of
// one already-resolved variable into the fields that depend on it.
//
// # Placeholders
//
// System scope:
//
//	@prefix@        -> every other field
//	@exec_prefix@   -> bindir, sbindir, libdir, libexecdir
//	@localstatedir@ -> runstatedir
//	@datarootdir@   -> docdir, mandir
//	@libdir@        -> pam_modulesdir, systemd_unitsdir
//
// User scope resolves the external base directories first (@HOME@,
// @XDG_DATA_HOME@, @XDG_CONFIG_HOME@, @XDG_RUNTIME_DIR@), then
// @sysconfdir@ into systemd_unitsdir.
//
// The order is part of the schema. It is not a fixed-point expansion: a
// value may carry the literal text of a later variable, which must stay
// untouched until that variable's own step runs.
//
// # Base directories
//
// User scope needs the home directory and the XDG base directories. They
// come from a BaseDirectories provider; XDGBaseDirectories implements it
// with github.com/adrg/xdg and refuses runtime directories that other users
// can access.
package dirs
