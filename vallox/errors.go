package vallox

import "fmt"

// TransportError wraps a network or protocol failure talking to the unit.
// Callers that only care whether the device was reachable can match on it
// with errors.As.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vallox %v: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}
