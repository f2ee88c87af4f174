package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidation(t *testing.T) {
	tests := []struct {
		name     string
		op       Opcode
		filename string
		mode     TransferMode
		opts     Options
	}{
		{"data opcode", OpData, "f", ModeOctet, nil},
		{"empty filename", OpRRQ, "", ModeOctet, nil},
		{"filename with NUL", OpRRQ, "f\x00oo", ModeOctet, nil},
		{"unknown mode", OpRRQ, "f", "base64", nil},
		{"empty option name", OpRRQ, "f", ModeOctet, Options{{Name: "", Value: "1"}}},
		{"option name with NUL", OpRRQ, "f", ModeOctet, Options{{Name: "blk\x00size", Value: "1"}}},
		{"option value with NUL", OpRRQ, "f", ModeOctet, Options{{Name: "blksize", Value: "1\x00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequest(tt.op, tt.filename, tt.mode, tt.opts)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidPDU)
		})
	}
}

func TestNewRequestCanonicalizesMode(t *testing.T) {
	req, err := NewRequest(OpRRQ, "f", "NETASCII", nil)
	require.NoError(t, err)
	assert.Equal(t, ModeNetascii, req.Mode)
}

func TestNewDataRejectsOversizedPayload(t *testing.T) {
	_, err := NewData(1, make([]byte, maxPayloadSize+1))
	assert.ErrorIs(t, err, ErrInvalidPDU)

	d, err := NewData(1, make([]byte, maxPayloadSize))
	require.NoError(t, err)
	assert.Len(t, Marshal(d), MaxDatagramSize)
}

func TestNewDataCopiesPayload(t *testing.T) {
	buf := []byte{1, 2, 3}

	d, err := NewData(1, buf)
	require.NoError(t, err)

	buf[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, d.Payload)
}

func TestNewErrorRejectsNULMessage(t *testing.T) {
	_, err := NewError(ErrCodeNotDefined, "bad\x00msg")
	assert.ErrorIs(t, err, ErrInvalidPDU)
}

func TestNewOptionAckValidation(t *testing.T) {
	_, err := NewOptionAck(Options{{Name: "", Value: "x"}})
	assert.ErrorIs(t, err, ErrInvalidPDU)
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "RRQ", OpRRQ.String())
	assert.Equal(t, "OACK", OpOAck.String())
	assert.Equal(t, "opcode(9)", Opcode(9).String())
}

func TestErrCodeString(t *testing.T) {
	assert.Equal(t, "file not found", ErrCodeFileNotFound.String())
	assert.Equal(t, "option negotiation failed", ErrCodeOptionNegotiation.String())
	assert.Equal(t, "error code 99", ErrCode(99).String())
}
