//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import "encoding/binary"

const headerLength = 12

// DecodeResponse decodes buf as a DNS response message.
//
// It does not check the transaction ID against any particular query;
// callers that need that check (all of them, per RFC 1035 hygiene)
// call [CheckTxID] afterwards.
func DecodeResponse(buf []byte) (Response, error) {
	if len(buf) < headerLength {
		return Response{}, ErrTruncatedPacket
	}

	id := binary.BigEndian.Uint16(buf[0:2])
	flags := DecodeFlags(binary.BigEndian.Uint16(buf[2:4]))
	if !flags.QR {
		return Response{}, ErrNotAResponse
	}
	qdcount := binary.BigEndian.Uint16(buf[4:6])
	ancount := binary.BigEndian.Uint16(buf[6:8])
	nscount := binary.BigEndian.Uint16(buf[8:10])
	arcount := binary.BigEndian.Uint16(buf[10:12])

	pos := headerLength
	for i := uint16(0); i < qdcount; i++ {
		var err error
		pos, err = skipQuestion(buf, pos)
		if err != nil {
			return Response{}, err
		}
	}

	answers, pos, err := decodeRRs(buf, pos, ancount)
	if err != nil {
		return Response{}, err
	}
	authorities, pos, err := decodeRRs(buf, pos, nscount)
	if err != nil {
		return Response{}, err
	}
	additionals, _, err := decodeRRs(buf, pos, arcount)
	if err != nil {
		return Response{}, err
	}

	return Response{
		ID:          id,
		Flags:       flags,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
	}, nil
}

// skipQuestion advances past one question section entry (name, TYPE,
// CLASS), discarding its value.
func skipQuestion(buf []byte, pos int) (int, error) {
	_, pos, err := decodeName(buf, pos)
	if err != nil {
		return 0, err
	}
	if pos+4 > len(buf) {
		return 0, ErrTruncatedPacket
	}
	return pos + 4, nil
}

func decodeRRs(buf []byte, pos int, count uint16) ([]Answer, int, error) {
	out := make([]Answer, 0, count)
	for i := uint16(0); i < count; i++ {
		var a Answer
		var err error
		a, pos, err = decodeRR(buf, pos)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, pos, nil
}

// decodeRR parses one resource record starting at pos and returns it
// along with the cursor position immediately following it.
//
// The returned cursor is always (position after the name) + 10 +
// RDLENGTH, regardless of any compression pointers followed while
// decoding the RDATA itself: a name embedded in RDATA (e.g. an MX
// exchange) must never perturb how far the *message* cursor advances.
func decodeRR(buf []byte, pos int) (Answer, int, error) {
	name, pos, err := decodeName(buf, pos)
	if err != nil {
		return Answer{}, 0, err
	}
	preambleStart := pos

	if preambleStart+10 > len(buf) {
		return Answer{}, 0, ErrTruncatedPacket
	}
	rrType := RecordType(binary.BigEndian.Uint16(buf[preambleStart : preambleStart+2]))
	rrClass := QClass(binary.BigEndian.Uint16(buf[preambleStart+2 : preambleStart+4]))
	ttl := binary.BigEndian.Uint32(buf[preambleStart+4 : preambleStart+8])
	rdlength := binary.BigEndian.Uint16(buf[preambleStart+8 : preambleStart+10])

	rdataStart := preambleStart + 10
	rdataEnd := rdataStart + int(rdlength)
	if rdataEnd > len(buf) {
		return Answer{}, 0, ErrTruncatedPacket
	}

	data, err := decodeRData(buf, rrType, rdataStart, int(rdlength))
	if err != nil {
		return Answer{}, 0, err
	}

	nextCursor := preambleStart + 10 + int(rdlength)
	if nextCursor != rdataEnd {
		// Unreachable given the arithmetic above; kept as the
		// invariant the format guarantees, made explicit.
		return Answer{}, 0, ErrInvalidFormat
	}

	return Answer{
		Name:  name,
		Type:  rrType,
		Class: rrClass,
		TTL:   ttl,
		Data:  data,
	}, nextCursor, nil
}
