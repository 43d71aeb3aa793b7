package config

// SupportedVersion is the only config file version understood by the loader.
const SupportedVersion = "1"

// Configfile represents the structure of the microbench.yaml configuration file.
type Configfile struct {
	Version  string     `yaml:"version"`
	Project  ProjectDTO `yaml:"project"`
	Packages string     `yaml:"packages"`
	Tool     string     `yaml:"tool"`
}

// ProjectDTO locates the benchmarks project.
type ProjectDTO struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}
