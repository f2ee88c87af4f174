package pdu

import (
	"encoding/binary"
	"fmt"
)

// ErrCode is the TFTP error code of an ERROR packet. The numeric space is
// open-ended (RFC extensions add codes), so unknown values are carried
// through rather than rejected.
type ErrCode uint16

const (
	ErrCodeNotDefined ErrCode = iota
	ErrCodeFileNotFound
	ErrCodeAccessViolation
	ErrCodeDiskFull
	ErrCodeIllegalOperation
	ErrCodeUnknownTransferID
	ErrCodeFileExists
	ErrCodeNoSuchUser
	// ErrCodeOptionNegotiation is the RFC 2347 option-refusal code.
	ErrCodeOptionNegotiation
)

func (c ErrCode) String() string {
	switch c {
	case ErrCodeNotDefined:
		return "not defined"
	case ErrCodeFileNotFound:
		return "file not found"
	case ErrCodeAccessViolation:
		return "access violation"
	case ErrCodeDiskFull:
		return "disk full or allocation exceeded"
	case ErrCodeIllegalOperation:
		return "illegal TFTP operation"
	case ErrCodeUnknownTransferID:
		return "unknown transfer ID"
	case ErrCodeFileExists:
		return "file already exists"
	case ErrCodeNoSuchUser:
		return "no such user"
	case ErrCodeOptionNegotiation:
		return "option negotiation failed"
	default:
		return fmt.Sprintf("error code %d", uint16(c))
	}
}

// Error is one ERROR packet.
type Error struct {
	Code    ErrCode
	Message string
}

// NewError builds an ERROR packet. Any code is accepted; the message must
// be NUL-free to fit a terminated wire field.
func NewError(code ErrCode, message string) (*Error, error) {
	if hasNUL(message) {
		return nil, fmt.Errorf("%w: error message contains NUL", ErrInvalidPDU)
	}

	return &Error{Code: code, Message: message}, nil
}

func (e *Error) Opcode() Opcode { return OpError }

func (e *Error) appendTo(b []byte) []byte {
	b = appendUint16(b, uint16(OpError))
	b = appendUint16(b, uint16(e.Code))
	b = append(b, e.Message...)

	return append(b, 0)
}

func parseError(data []byte) (*Error, error) {
	if len(data) < 4 {
		return nil, decodeErr(ErrTruncated, "error code", 2)
	}

	msg, next, ok := cutString(data, 4)
	if !ok {
		return nil, decodeErr(ErrTruncated, "error message", 4)
	}

	if next != len(data) {
		return nil, decodeErr(ErrTrailingGarbage, "error message", next)
	}

	return &Error{Code: ErrCode(binary.BigEndian.Uint16(data[2:])), Message: msg}, nil
}
