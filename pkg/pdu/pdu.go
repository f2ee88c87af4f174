// Package pdu encodes and decodes single TFTP protocol data units as
// defined by RFC 1350 and the option extensions of RFC 2347, 2348, 2349
// and 7440. One UDP datagram carries exactly one PDU; the transport layer
// owning the socket hands Parse the raw payload and writes back whatever
// Marshal produces. The package does no I/O and keeps no state: both
// functions are pure and safe for concurrent use.
package pdu

import "encoding/binary"

// MaxDatagramSize is the largest UDP payload a PDU can occupy.
const MaxDatagramSize = 65507

// DefaultBlockSize is the DATA payload size of RFC 1350, used when no
// blksize option was negotiated.
const DefaultBlockSize = 512

// PDU is one complete TFTP message. The interface is sealed: the only
// implementations are *Request, *Data, *Ack, *Error and *OptionAck, so a
// type switch over those five covers every value Parse can return.
type PDU interface {
	// Opcode identifies the packet kind on the wire.
	Opcode() Opcode

	// appendTo serializes the packet. Validation happened at
	// construction or parse time, so serialization cannot fail.
	appendTo(b []byte) []byte
}

// Parse decodes one datagram payload into its typed PDU. data is treated
// as untrusted: any structural defect is reported as a *DecodeError and
// nothing past len(data) is ever read. Bytes the result keeps (DATA
// payload, strings) are copied, so the caller may reuse data immediately.
func Parse(data []byte) (PDU, error) {
	if len(data) < 2 {
		return nil, decodeErr(ErrTruncated, "opcode", 0)
	}

	switch op := Opcode(binary.BigEndian.Uint16(data)); op {
	case OpRRQ, OpWRQ:
		return parseRequest(op, data)
	case OpData:
		return parseData(data)
	case OpAck:
		return parseAck(data)
	case OpError:
		return parseError(data)
	case OpOAck:
		return parseOAck(data)
	default:
		return nil, decodeErr(ErrUnknownOpcode, "opcode", 0)
	}
}

// Marshal encodes p into the byte sequence to put on the wire. It is
// total: every PDU built by a constructor or returned by Parse encodes
// without failure, and Parse(Marshal(p)) reproduces p exactly.
func Marshal(p PDU) []byte {
	return p.appendTo(nil)
}

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

// hasNUL reports whether s cannot be carried in a NUL-terminated wire
// field.
func hasNUL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}

	return false
}
