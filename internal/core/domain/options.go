package domain

// RunOptions is the validated configuration of one orchestrator run.
type RunOptions struct {
	Configuration Configuration
	// Frameworks is non-empty, free of duplicates and in first-seen order.
	Frameworks []Framework
	// Incremental keeps packages and bin/obj folders from previous runs.
	Incremental            bool
	EnableHardwareCounters bool
	// Category is empty when no category filter was given.
	Category Category
	Filters  []string
	// CoreRun and CLI are absolute paths to existing files, or empty.
	CoreRun      string
	CLI          string
	BDNArguments []string
	Verbose      bool
}

// FrameworkNames returns the frameworks as plain strings.
func (o RunOptions) FrameworkNames() []string {
	names := make([]string, len(o.Frameworks))
	for i, f := range o.Frameworks {
		names[i] = string(f)
	}
	return names
}
