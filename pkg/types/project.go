package types

// Project locates the files of the project being installed. It says
// nothing about the destination directories.
type Project struct {
	// ProjectDir is the manifest and source root
	ProjectDir string `json:"projectdir" yaml:"projectdir"`

	// OutputDir is the root of built artifacts. It equals ProjectDir for
	// projects without a build step and for release tarballs.
	OutputDir string `json:"outputdir" yaml:"outputdir"`
}
