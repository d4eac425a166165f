//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import "encoding/binary"

// EDNSMode controls whether and how an OPT pseudo-record is attached
// to an outgoing query.
type EDNSMode int

const (
	// EDNSDisable omits the OPT record entirely (the default: this
	// package assembles OPT-record opt-ins only, never unconditionally).
	EDNSDisable EDNSMode = iota

	// EDNSHide assembles the OPT record but signals to callers that it
	// should not be included in a human-readable rendering.
	EDNSHide

	// EDNSShow assembles the OPT record and signals that it should be
	// rendered.
	EDNSShow
)

// Tweaks are the protocol opt-in flags recognised by the -Z CLI option
// and the "tweaks" library option.
type Tweaks struct {
	AA bool
	AD bool
	CD bool

	// BufSize is the requestor's UDP payload size advertised in the
	// OPT record. Zero means "use the default" (1232) whenever an
	// OPT record is being assembled at all.
	BufSize uint16
}

const defaultUDPPayloadSize = 1232

// EncodeOptions controls query encoding.
type EncodeOptions struct {
	// ID is the query transaction ID. Use [NewEncodeOptions] to get a
	// randomized default.
	ID uint16

	// RD is the Recursion Desired bit. Defaults to true via
	// [NewEncodeOptions].
	RD bool

	EDNS   EDNSMode
	Tweaks Tweaks
}

// NewEncodeOptions returns encoding options with a randomized ID,
// recursion requested, and EDNS(0) disabled.
func NewEncodeOptions() EncodeOptions {
	return EncodeOptions{
		ID: randomID(),
		RD: true,
	}
}

// EncodeQuery encodes q into a DNS query message.
//
// The header is packed first (ID, flags, QDCOUNT=1, ANCOUNT=NSCOUNT=0,
// ARCOUNT=1 when an OPT record follows and 0 otherwise), followed by
// the single question, followed by an OPT pseudo-record in the
// additional section when opts.EDNS is not [EDNSDisable].
func EncodeQuery(q Query, opts EncodeOptions) ([]byte, error) {
	flags := Flags{
		RD: opts.RD,
		AA: opts.Tweaks.AA,
		AD: opts.Tweaks.AD,
		CD: opts.Tweaks.CD,
	}

	arcount := uint16(0)
	if opts.EDNS != EDNSDisable {
		arcount = 1
	}

	buf := make([]byte, 0, 64)
	buf = binary.BigEndian.AppendUint16(buf, opts.ID)
	buf = binary.BigEndian.AppendUint16(buf, flags.Encode())
	buf = binary.BigEndian.AppendUint16(buf, 1) // QDCOUNT
	buf = binary.BigEndian.AppendUint16(buf, 0) // ANCOUNT
	buf = binary.BigEndian.AppendUint16(buf, 0) // NSCOUNT
	buf = binary.BigEndian.AppendUint16(buf, arcount)

	var err error
	buf, err = encodeName(buf, q.Name)
	if err != nil {
		return nil, err
	}
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Class))

	if opts.EDNS != EDNSDisable {
		buf = appendOPTRecord(buf, opts.Tweaks.BufSize)
	}

	return buf, nil
}

// appendOPTRecord appends a minimal EDNS(0) OPT pseudo-record: root
// name, TYPE=OPT, requestor's UDP payload size in the CLASS field,
// extended-RCODE/version/flags all zero, and no options.
func appendOPTRecord(buf []byte, bufSize uint16) []byte {
	if bufSize == 0 {
		bufSize = defaultUDPPayloadSize
	}
	buf = append(buf, 0) // root name
	buf = binary.BigEndian.AppendUint16(buf, uint16(TypeOPT))
	buf = binary.BigEndian.AppendUint16(buf, bufSize) // "class" slot: UDP payload size
	buf = append(buf, 0, 0, 0, 0)                     // extended-rcode, version, flags
	buf = binary.BigEndian.AppendUint16(buf, 0)       // RDLENGTH
	return buf
}
