package ports

// RuntimeValidator checks that the host can run the benchmarks.
//
//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeValidator interface {
	// Validate fails if the operating system is unsupported or tool cannot be found.
	Validate(tool string) error
}
