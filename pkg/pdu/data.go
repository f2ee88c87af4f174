package pdu

import (
	"encoding/binary"
	"fmt"
)

// maxPayloadSize is MaxDatagramSize minus the 4-byte DATA header.
const maxPayloadSize = MaxDatagramSize - 4

// Data is one DATA packet. Block numbers start at one and wrap around
// after 65535; the codec does not track negotiated block sizes, so any
// payload that fits a UDP datagram is representable.
type Data struct {
	Block   uint16
	Payload []byte
}

// NewData builds a DATA packet, copying payload so the packet does not
// alias caller memory.
func NewData(block uint16, payload []byte) (*Data, error) {
	if len(payload) > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds datagram limit", ErrInvalidPDU, len(payload))
	}

	d := &Data{Block: block}
	if len(payload) > 0 {
		d.Payload = append([]byte(nil), payload...)
	}

	return d, nil
}

func (d *Data) Opcode() Opcode { return OpData }

func (d *Data) appendTo(b []byte) []byte {
	b = appendUint16(b, uint16(OpData))
	b = appendUint16(b, d.Block)

	return append(b, d.Payload...)
}

func parseData(data []byte) (*Data, error) {
	if len(data) < 4 {
		return nil, decodeErr(ErrTruncated, "block number", 2)
	}

	d := &Data{Block: binary.BigEndian.Uint16(data[2:])}
	if rest := data[4:]; len(rest) > 0 {
		d.Payload = append([]byte(nil), rest...)
	}

	return d, nil
}
