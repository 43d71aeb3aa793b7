package domain

import "strings"

// Configuration is the build configuration passed to the build tool.
type Configuration string

const (
	// ConfigurationRelease is the default configuration.
	ConfigurationRelease Configuration = "Release"
	// ConfigurationDebug builds without optimizations.
	ConfigurationDebug Configuration = "Debug"
)

// SupportedConfigurations returns the known configurations, default first.
func SupportedConfigurations() []Configuration {
	return []Configuration{ConfigurationRelease, ConfigurationDebug}
}

// ParseConfiguration matches s case-insensitively against the supported configurations
// and returns the canonical spelling.
func ParseConfiguration(s string) (Configuration, error) {
	for _, c := range SupportedConfigurations() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownConfiguration
}

// String returns the canonical configuration name.
func (c Configuration) String() string {
	return string(c)
}
