package ports

// Remover deletes directories from disk.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Remover interface {
	// RemoveDirectory deletes path and everything below it.
	// A path that does not exist is not an error.
	RemoveDirectory(path string) error
}
