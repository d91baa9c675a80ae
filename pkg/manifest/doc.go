// Package manifest loads install manifests.
//
// A manifest lives at the root of a project as install.yml, install.yaml
// or install.toml. It declares the manifest version and the packages of
// the project, keyed by name:
//
//	version: 0.2.0
//	pkgs:
//	  foo:
//	    type: rust
//	    exe:
//	      - foo
//	    man:
//	      - source: docs/foo.1
//
// Decoding is strict: any key that is not part of the schema is rejected.
// An entry may be written as a bare source path or as a record with
// source, destination and templating fields. Packages keep the order in
// which the document declares them.
package manifest
