package pdu

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Match with errors.Is; the concrete error returned
// by Parse is always a *DecodeError wrapping one of these.
var (
	ErrTruncated       = errors.New("packet truncated")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrInvalidMode     = errors.New("invalid transfer mode")
	ErrInvalidField    = errors.New("invalid field")
	ErrTrailingGarbage = errors.New("unexpected trailing bytes")

	// ErrInvalidPDU is returned by constructors when a value would not be
	// representable on the wire.
	ErrInvalidPDU = errors.New("invalid packet value")
)

// DecodeError reports where decoding stopped: the failure kind, the field
// being read and the byte offset into the datagram at which it started.
type DecodeError struct {
	Kind   error
	Field  string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: field %q at offset %d", e.Kind, e.Field, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Kind }

func decodeErr(kind error, field string, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Field: field, Offset: offset}
}
