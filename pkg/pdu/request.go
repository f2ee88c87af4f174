package pdu

import "fmt"

// Request is a read (RRQ) or write (WRQ) request.
type Request struct {
	Op       Opcode
	Filename string
	Mode     TransferMode
	Options  Options
}

// NewRequest builds a request packet. op must be OpRRQ or OpWRQ, the
// filename must be non-empty, the mode must be a known transfer mode
// (compared case-insensitively) and no string field may contain a NUL
// byte. Option casing and order are kept exactly as given.
func NewRequest(op Opcode, filename string, mode TransferMode, opts Options) (*Request, error) {
	if op != OpRRQ && op != OpWRQ {
		return nil, fmt.Errorf("%w: %s is not a request opcode", ErrInvalidPDU, op)
	}

	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidPDU)
	}

	if hasNUL(filename) {
		return nil, fmt.Errorf("%w: filename contains NUL", ErrInvalidPDU)
	}

	m, ok := ParseMode(string(mode))
	if !ok {
		return nil, fmt.Errorf("%w: transfer mode %q", ErrInvalidPDU, string(mode))
	}

	if err := validOptions(opts); err != nil {
		return nil, err
	}

	return &Request{Op: op, Filename: filename, Mode: m, Options: opts}, nil
}

func validOptions(opts Options) error {
	for _, o := range opts {
		if o.Name == "" {
			return fmt.Errorf("%w: empty option name", ErrInvalidPDU)
		}

		if hasNUL(o.Name) || hasNUL(o.Value) {
			return fmt.Errorf("%w: option %q contains NUL", ErrInvalidPDU, o.Name)
		}
	}

	return nil
}

func (r *Request) Opcode() Opcode { return r.Op }

func (r *Request) appendTo(b []byte) []byte {
	b = appendUint16(b, uint16(r.Op))
	b = append(b, r.Filename...)
	b = append(b, 0)
	b = append(b, string(r.Mode)...)
	b = append(b, 0)

	return appendOptions(b, r.Options)
}

func parseRequest(op Opcode, data []byte) (*Request, error) {
	filename, next, ok := cutString(data, 2)
	if !ok {
		return nil, decodeErr(ErrTruncated, "filename", 2)
	}

	if filename == "" {
		return nil, decodeErr(ErrInvalidField, "filename", 2)
	}

	rawMode, mnext, ok := cutString(data, next)
	if !ok {
		return nil, decodeErr(ErrTruncated, "mode", next)
	}

	mode, ok := ParseMode(rawMode)
	if !ok {
		return nil, decodeErr(ErrInvalidMode, "mode", next)
	}

	opts, err := parseOptions(data, mnext)
	if err != nil {
		return nil, err
	}

	return &Request{Op: op, Filename: filename, Mode: mode, Options: opts}, nil
}
