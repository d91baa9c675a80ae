// Package compiler turns a package declaration into the ordered list of
// install targets for one run.
//
// Every category is described by a variant in a closed table. A variant
// knows its install directory, the tree its sources are read from (the
// build output or the project sources), whether existing files may be
// replaced, the scopes it applies to and, for man pages, terminfo entries,
// PAM modules and icons, how a single entry is placed.
//
// Categories are compiled in a fixed order and the result is all or
// nothing: the first invalid entry aborts the whole package.
//
// A source prefixed with $PROJECTDIR/ is read from the project sources
// even when its category normally reads from the build output.
package compiler
