package pdu

import "strings"

// Option names registered by RFC 2347 extensions.
const (
	OptBlocksize    = "blksize"    // RFC 2348
	OptTimeout      = "timeout"    // RFC 2349
	OptTransferSize = "tsize"      // RFC 2349
	OptWindowSize   = "windowsize" // RFC 7440
)

// Option is one negotiated name/value pair. Names compare
// case-insensitively per RFC 2347, but the codec preserves the casing it
// was given: what was parsed or constructed is what goes on the wire.
type Option struct {
	Name  string
	Value string
}

// Is reports whether the option carries the given name, ignoring case.
func (o Option) Is(name string) bool { return strings.EqualFold(o.Name, name) }

// Options is an ordered option list. Order and duplicates survive a
// parse/marshal round trip untouched.
type Options []Option

// Get returns the value of the named option, compared case-insensitively.
// When the name occurs more than once the last occurrence wins, mirroring
// how a server that processes options in order would end up behaving.
func (os Options) Get(name string) (string, bool) {
	for i := len(os) - 1; i >= 0; i-- {
		if os[i].Is(name) {
			return os[i].Value, true
		}
	}

	return "", false
}

// appendOptions emits the alternating NUL-terminated name/value tail
// shared by request and OACK packets.
func appendOptions(b []byte, opts Options) []byte {
	for _, o := range opts {
		b = append(b, o.Name...)
		b = append(b, 0)
		b = append(b, o.Value...)
		b = append(b, 0)
	}

	return b
}

// parseOptions decodes the option tail starting at offset off of the
// datagram. The tail must contain an even number of NUL-terminated
// fields; a name with no value is a framing error, not something to drop.
func parseOptions(data []byte, off int) (Options, error) {
	var opts Options

	for off < len(data) {
		name, next, ok := cutString(data, off)
		if !ok {
			return nil, decodeErr(ErrTruncated, "option name", off)
		}

		if name == "" {
			return nil, decodeErr(ErrInvalidField, "option name", off)
		}

		if next == len(data) {
			// name terminated exactly at the buffer end: odd field
			// count, the value is missing entirely
			return nil, decodeErr(ErrInvalidField, "option value", next)
		}

		value, vnext, ok := cutString(data, next)
		if !ok {
			return nil, decodeErr(ErrTruncated, "option value", next)
		}

		opts = append(opts, Option{Name: name, Value: value})
		off = vnext
	}

	return opts, nil
}

// cutString reads a NUL-terminated string starting at off and returns it
// together with the offset just past the terminator. ok is false when no
// terminator exists before the end of the buffer.
func cutString(data []byte, off int) (s string, next int, ok bool) {
	for i := off; i < len(data); i++ {
		if data[i] == 0 {
			return string(data[off:i]), i + 1, true
		}
	}

	return "", off, false
}
