package greeting

// Invocation is the state derived for a single run: the optional name
// captured from the argument string and the greeting built from it.
// Greeting is never empty.
type Invocation struct {
	Name     string
	Greeting string
}

// HasName reports whether a name was captured.
func (inv Invocation) HasName() bool {
	return inv.Name != ""
}
