// Package types defines the data model shared by the placer packages:
// the parsed manifest (Manifest, Package, InstallEntry, Icon), the
// installation Scope, the Project locations used to resolve entry sources,
// and the compiled InstallTarget consumed by executors and listers.
package types
