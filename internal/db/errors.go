package db

import "errors"

// ErrUnexpectedReply is returned when a script answers with a value the caller cannot interpret.
var ErrUnexpectedReply = errors.New("db: unexpected reply")

// Op constants map to Redis command names for error context.
const (
	OpPing = "PING"
	OpEval = "EVAL"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
