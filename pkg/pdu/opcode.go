package pdu

import "fmt"

// Opcode is the 16-bit operation code carried in the first two bytes
// of every TFTP packet.
type Opcode uint16

const (
	OpRRQ Opcode = iota + 1
	OpWRQ
	OpData
	OpAck
	OpError
	OpOAck
)

func (o Opcode) String() string {
	switch o {
	case OpRRQ:
		return "RRQ"
	case OpWRQ:
		return "WRQ"
	case OpData:
		return "DATA"
	case OpAck:
		return "ACK"
	case OpError:
		return "ERROR"
	case OpOAck:
		return "OACK"
	default:
		return fmt.Sprintf("opcode(%d)", uint16(o))
	}
}
