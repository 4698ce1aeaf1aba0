package interpreter

import "fmt"

// RuntimeError is a semantic diagnostic: flut's evaluator never aborts
// on one (per §7, it logs and yields 0 for that expression), so this
// type exists to give diagnostics a consistent shape rather than to be
// returned as a fatal error.
type RuntimeError struct {
	Line    int32
	Message string
}

func newRuntimeError(line int32, format string, args ...any) RuntimeError {
	return RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
