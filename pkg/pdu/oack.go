package pdu

// OptionAck is the OACK packet of RFC 2347: the server's acknowledged
// subset of the options a request carried. An empty option list is legal
// on the wire, if pointless.
type OptionAck struct {
	Options Options
}

func NewOptionAck(opts Options) (*OptionAck, error) {
	if err := validOptions(opts); err != nil {
		return nil, err
	}

	return &OptionAck{Options: opts}, nil
}

func (o *OptionAck) Opcode() Opcode { return OpOAck }

func (o *OptionAck) appendTo(b []byte) []byte {
	b = appendUint16(b, uint16(OpOAck))

	return appendOptions(b, o.Options)
}

func parseOAck(data []byte) (*OptionAck, error) {
	opts, err := parseOptions(data, 2)
	if err != nil {
		return nil, err
	}

	return &OptionAck{Options: opts}, nil
}
