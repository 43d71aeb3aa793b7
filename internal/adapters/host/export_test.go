package host

// NewRootResolverFrom creates a RootResolver with a custom working directory source.
func NewRootResolverFrom(getwd func() (string, error)) *RootResolver {
	return &RootResolver{getwd: getwd}
}

// NewRuntimeValidatorFor creates a RuntimeValidator for an arbitrary host.
func NewRuntimeValidatorFor(goos string, lookPath func(string) (string, error)) *RuntimeValidator {
	return &RuntimeValidator{goos: goos, lookPath: lookPath}
}
