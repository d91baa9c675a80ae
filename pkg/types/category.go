package types

// Category names a manifest section. The values are the manifest keys.
type Category string

const (
	CategoryExe               Category = "exe"
	CategoryAdminExe          Category = "admin-exe"
	CategoryLibs              Category = "libs"
	CategoryLibexec           Category = "libexec"
	CategoryIncludes          Category = "includes"
	CategoryMan               Category = "man"
	CategoryData              Category = "data"
	CategoryDocs              Category = "docs"
	CategoryConfig            Category = "config"
	CategoryUserConfig        Category = "user-config"
	CategoryDesktopFiles      Category = "desktop-files"
	CategoryAppstreamMetadata Category = "appstream-metadata"
	CategoryBashCompletions   Category = "completions.bash"
	CategoryFishCompletions   Category = "completions.fish"
	CategoryZshCompletions    Category = "completions.zsh"
	CategoryPamModules        Category = "pam-modules"
	CategorySystemdUnits      Category = "systemd-units"
	CategorySystemdUserUnits  Category = "systemd-user-units"
	CategoryIcons             Category = "icons"
	CategoryTerminfo          Category = "terminfo"
	CategoryLicenses          Category = "licenses"
	CategoryPkgConfig         Category = "pkg-config"
)

// AllCategories lists every category in manifest declaration order
var AllCategories = []Category{
	CategoryExe,
	CategoryAdminExe,
	CategoryLibs,
	CategoryLibexec,
	CategoryIncludes,
	CategoryMan,
	CategoryData,
	CategoryDocs,
	CategoryConfig,
	CategoryUserConfig,
	CategoryDesktopFiles,
	CategoryAppstreamMetadata,
	CategoryBashCompletions,
	CategoryFishCompletions,
	CategoryZshCompletions,
	CategoryPamModules,
	CategorySystemdUnits,
	CategorySystemdUserUnits,
	CategoryIcons,
	CategoryTerminfo,
	CategoryLicenses,
	CategoryPkgConfig,
}
