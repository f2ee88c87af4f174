package pdu

import "strings"

// TransferMode is one of the transfer modes of RFC 1350 §3. Mode strings
// are case-insensitive on the wire; parsed values are kept in their
// canonical lowercase form.
type TransferMode string

const (
	ModeNetascii TransferMode = "netascii"
	ModeOctet    TransferMode = "octet"
	// ModeMail is obsolete but still wire-legal; whether to serve it is
	// the caller's decision.
	ModeMail TransferMode = "mail"
)

// ParseMode folds case and reports whether s names a known transfer mode.
func ParseMode(s string) (TransferMode, bool) {
	switch TransferMode(strings.ToLower(s)) {
	case ModeNetascii:
		return ModeNetascii, true
	case ModeOctet:
		return ModeOctet, true
	case ModeMail:
		return ModeMail, true
	default:
		return "", false
	}
}

func (m TransferMode) String() string { return string(m) }
