package sigae

import (
	"errors"
	"fmt"
)

// noRecordsDescription is the literal SIGAE marker for "this id does not
// exist". It arrives inside a 2xx response and must be matched byte-for-byte,
// trailing period included.
const noRecordsDescription = "No se encontraron registros."

// TransportError means the upstream was unreachable, returned a non-2xx
// status, timed out, or sent an undecodable body. Always retryable by the
// caller and never a reason to search for a replacement id.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sigae: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError means SIGAE answered successfully but reported that no
// record exists for the requested incident id. It carries the address field
// of the response so the reconciliation search can compare candidates
// against it.
type NotFoundError struct {
	IncidentID int
	Address    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sigae: no records found for incident %d", e.IncidentID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
