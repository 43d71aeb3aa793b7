package ports

// RootResolver locates the repository the benchmarks live in.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type RootResolver interface {
	// Resolve returns the absolute path of the repository root.
	Resolve() (string, error)
}
