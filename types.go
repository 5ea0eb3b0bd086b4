package radatext

// Version information for the radatext tools.
const (
	Version = "0.2.0"
	Name    = "radatext"
)

// DefaultMask selects every file in the source directory when no mask is
// given on the command line.
const DefaultMask = "*.*"

// Task describes one batch conversion run: which directory to read, where
// to write the converted files, and which filenames to pick up. A Task is
// built once from validated CLI input and never mutated.
type Task struct {
	// InputDir is an existing directory holding the legacy-encoded files.
	// Only its direct children are considered; subdirectories are never
	// descended into.
	InputDir string

	// OutputDir is an existing directory that receives the converted
	// files under their original names. Existing files are overwritten.
	OutputDir string

	// Mask is a case-insensitive wildcard pattern ('*' and '?') applied
	// to bare filenames.
	Mask string
}

// BuildInfo contains version information for the radatext tools, for use
// in --version output.
type BuildInfo struct {
	Version string
	Name    string
}

// GetBuildInfo returns the current version information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version: Version,
		Name:    Name,
	}
}
