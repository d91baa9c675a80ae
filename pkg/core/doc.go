// Package core implements the planning flow of placer.
//
// Plan ties the components together:
//
//  1. the directory set of the run is resolved from the scope defaults,
//     the configured overrides and, for user installations, the XDG base
//     directories
//  2. the manifest of the project is loaded
//  3. the requested packages are selected and checked against the
//     manifest version
//  4. each package gets its project trees located and is compiled into
//     install targets
//
// Planning is all or nothing. Any failure returns an error and no
// targets, so callers never act on a partial plan.
package core
