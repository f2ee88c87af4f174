// tftpdump decodes a single TFTP datagram read from stdin and prints its
// structure. Input is hex by default (whitespace ignored), raw bytes with
// TFTPDUMP_RAW=true. Useful for inspecting payloads captured off the
// wire without dragging in a full packet tracer.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Wa4h1h/tftp-codec/internal/utils"
	"github.com/Wa4h1h/tftp-codec/pkg/pdu"
)

var (
	logLevel = utils.GetEnv[string]("TFTPDUMP_LOG_LEVEL", "info", false)
	rawInput = utils.GetEnv[bool]("TFTPDUMP_RAW", "false", false)
)

func main() {
	l := utils.NewLogger(logLevel).Sugar()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		l.Fatalf("reading stdin: %s", err)
	}

	datagram := input
	if !rawInput {
		datagram, err = hex.DecodeString(stripSpace(string(input)))
		if err != nil {
			l.Fatalf("decoding hex input: %s", err)
		}
	}

	l.Debugf("parsing %d byte datagram", len(datagram))

	p, err := pdu.Parse(datagram)
	if err != nil {
		var derr *pdu.DecodeError
		if errors.As(err, &derr) {
			l.Fatalw("malformed datagram",
				"kind", derr.Kind.Error(),
				"field", derr.Field,
				"offset", derr.Offset)
		}

		l.Fatalf("malformed datagram: %s", err)
	}

	fmt.Println(describe(p))
}

func describe(p pdu.PDU) string {
	switch p := p.(type) {
	case *pdu.Request:
		return fmt.Sprintf("%s filename=%q mode=%s%s",
			p.Op, p.Filename, p.Mode, describeOptions(p.Options))
	case *pdu.Data:
		return fmt.Sprintf("DATA block=%d payload=%d bytes", p.Block, len(p.Payload))
	case *pdu.Ack:
		return fmt.Sprintf("ACK block=%d", p.Block)
	case *pdu.Error:
		return fmt.Sprintf("ERROR code=%d (%s) message=%q", uint16(p.Code), p.Code, p.Message)
	case *pdu.OptionAck:
		return "OACK" + describeOptions(p.Options)
	default:
		// unreachable: the PDU interface is sealed
		return p.Opcode().String()
	}
}

func describeOptions(opts pdu.Options) string {
	var b strings.Builder
	for _, o := range opts {
		fmt.Fprintf(&b, " %s=%q", o.Name, o.Value)
	}

	return b.String()
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
