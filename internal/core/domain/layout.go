package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional repository configuration file.
	ConfigFileName = "microbench.yaml"

	// DefaultProjectDir is the benchmarks project directory, relative to the repository root.
	DefaultProjectDir = "src/benchmarks/micro"

	// DefaultProjectFile is the benchmarks project file name.
	DefaultProjectFile = "MicroBenchmarks.csproj"

	// DefaultPackagesDir is the package restore directory, relative to the repository root.
	DefaultPackagesDir = "packages"

	// DefaultTool is the external build tool.
	DefaultTool = "dotnet"

	// BinDirName and ObjDirName are the project's transient build output directories.
	BinDirName = "bin"
	ObjDirName = "obj"
)

// Layout holds the absolute locations the pipeline works with.
type Layout struct {
	RepoRoot    string
	ProjectDir  string
	ProjectFile string
	PackagesDir string
	Tool        string
}

// DefaultLayout returns the layout used when the repository has no config file.
func DefaultLayout(root string) Layout {
	projectDir := filepath.Join(root, filepath.FromSlash(DefaultProjectDir))
	return Layout{
		RepoRoot:    root,
		ProjectDir:  projectDir,
		ProjectFile: filepath.Join(projectDir, DefaultProjectFile),
		PackagesDir: filepath.Join(root, DefaultPackagesDir),
		Tool:        DefaultTool,
	}
}

// ArtifactDirs returns the directories removed by a non-incremental run.
func (l Layout) ArtifactDirs() []string {
	return []string{
		l.PackagesDir,
		filepath.Join(l.ProjectDir, BinDirName),
		filepath.Join(l.ProjectDir, ObjDirName),
	}
}
