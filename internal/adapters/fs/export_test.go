package fs

// NewRemoverWithFunc exposes a Remover backed by a custom removal function for testing.
func NewRemoverWithFunc(fn func(string) error) *Remover {
	return &Remover{removeAll: fn}
}
