package pdu

import "encoding/binary"

// Ack acknowledges one DATA block. Block zero is legal: it is how a
// server answers a WRQ before any data, and how a client accepts an OACK.
type Ack struct {
	Block uint16
}

func NewAck(block uint16) *Ack { return &Ack{Block: block} }

func (a *Ack) Opcode() Opcode { return OpAck }

func (a *Ack) appendTo(b []byte) []byte {
	b = appendUint16(b, uint16(OpAck))

	return appendUint16(b, a.Block)
}

// parseAck is strict: an ACK is exactly four bytes, and datagrams padded
// past that are rejected rather than silently letting the tail ride
// along.
func parseAck(data []byte) (*Ack, error) {
	if len(data) < 4 {
		return nil, decodeErr(ErrTruncated, "block number", 2)
	}

	if len(data) > 4 {
		return nil, decodeErr(ErrTrailingGarbage, "block number", 4)
	}

	return &Ack{Block: binary.BigEndian.Uint16(data[2:])}, nil
}
