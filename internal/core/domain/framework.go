package domain

import "slices"

// Framework identifies a .NET target framework the benchmarks can be built and run for.
type Framework string

// WindowsOnlyFramework is only buildable on Windows hosts.
const WindowsOnlyFramework Framework = "net461"

type frameworkEntry struct {
	framework Framework
	channel   string
}

// frameworkTable maps each portable framework to the dotnet CLI channel that ships it.
var frameworkTable = []frameworkEntry{
	{framework: "netcoreapp3.0", channel: "master"},
	{framework: "netcoreapp2.2", channel: "2.2"},
	{framework: "netcoreapp2.1", channel: "2.1"},
	{framework: "netcoreapp2.0", channel: "2.0"},
}

// SupportedFrameworks returns the frameworks supported on the given operating system
// (a runtime.GOOS value), in table order.
func SupportedFrameworks(goos string) []Framework {
	frameworks := make([]Framework, 0, len(frameworkTable)+1)
	for _, entry := range frameworkTable {
		frameworks = append(frameworks, entry.framework)
	}
	if goos == "windows" {
		frameworks = append(frameworks, WindowsOnlyFramework)
	}
	return frameworks
}

// IsSupportedFramework reports whether name is a supported framework on goos.
// The comparison is case-sensitive.
func IsSupportedFramework(goos string, name string) bool {
	return slices.Contains(SupportedFrameworks(goos), Framework(name))
}

// FrameworkChannel returns the dotnet CLI channel for the framework.
// The second value is false for frameworks without a channel.
func FrameworkChannel(f Framework) (string, bool) {
	for _, entry := range frameworkTable {
		if entry.framework == f {
			return entry.channel, true
		}
	}
	return "", false
}

// String returns the framework identifier.
func (f Framework) String() string {
	return string(f)
}
