package fork_join

import "fmt"

// PanicError wraps a panic recovered from a sort task, typically raised by
// the comparator.
type PanicError struct {
	Value interface{}
	Stack string
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// InvariantError reports a broken internal invariant such as an unbalanced
// acquire/release or a double join. It is always raised as a panic.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return "fork_join: invariant violated: " + e.msg
}

// Invariant builds an InvariantError with a formatted message.
func Invariant(format string, args ...interface{}) *InvariantError {
	return &InvariantError{msg: fmt.Sprintf(format, args...)}
}
