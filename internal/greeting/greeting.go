package greeting

const (
	// AssignmentKey is the variable name written to stdout.
	AssignmentKey = "DEMO_GREETING"
	// DefaultGreeting is used whenever no name is captured.
	DefaultGreeting = "Hello from the env_setup.py script!"
	// DiagnosticMessage is the single informational line written to stderr.
	DiagnosticMessage = "env_setup.py: Setting " + AssignmentKey
)

// Resolve derives the Invocation for the raw argument string. It never fails:
// when parsing goes wrong the default greeting is kept and the parse error is
// returned alongside for diagnostics.
func Resolve(raw string) (Invocation, error) {
	inv := Invocation{Greeting: DefaultGreeting}

	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return inv, nil
	}

	name, err := ParseName(tokens)
	if err != nil {
		return inv, err
	}
	if name != "" {
		inv.Name = name
		inv.Greeting = "Hello, " + name + "!"
	}
	return inv, nil
}

// Assignment renders the KEY="VALUE" line, without a trailing newline.
// The greeting is written verbatim; quotes inside a name are not escaped.
func (inv Invocation) Assignment() string {
	return AssignmentKey + `="` + inv.Greeting + `"`
}
