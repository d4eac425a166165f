//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// decodeRData parses the RDATA of one resource record. start and
// length delimit the RDATA run within buf; a name embedded in RDATA
// (MX, CNAME, NS, PTR) may use compression pointers that jump
// anywhere earlier in buf, but the return value here never affects
// how the caller advances its own cursor — see [decodeRR].
func decodeRData(buf []byte, t RecordType, start, length int) (RData, error) {
	switch t {
	case TypeA:
		if length != 4 {
			return nil, ErrInvalidLength
		}
		rd := buf[start : start+4]
		return AData{Address: fmt.Sprintf("%d.%d.%d.%d", rd[0], rd[1], rd[2], rd[3])}, nil

	case TypeAAAA:
		if length != 16 {
			return nil, ErrInvalidLength
		}
		rd := buf[start : start+16]
		return AAAAData{Address: formatAAAA(rd)}, nil

	case TypeCNAME, TypeNS, TypePTR:
		name, _, err := decodeName(buf, start)
		if err != nil {
			return nil, err
		}
		return NameData{Name: name}, nil

	case TypeMX:
		if length < 2 {
			return nil, ErrInvalidFormat
		}
		pref := binary.BigEndian.Uint16(buf[start : start+2])
		exchange, _, err := decodeName(buf, start+2)
		if err != nil {
			return nil, err
		}
		return MXData{Preference: pref, Exchange: exchange}, nil

	case TypeTXT:
		text, err := decodeTXT(buf[start : start+length])
		if err != nil {
			return nil, err
		}
		return TXTData{Text: text}, nil

	default:
		return OpaqueData{Hex: hex.EncodeToString(buf[start : start+length])}, nil
	}
}

// formatAAAA renders 16 RDATA octets as eight lowercase hex groups
// with no leading-zero padding and no "::" run compression.
func formatAAAA(rd []byte) string {
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		v := uint16(rd[2*i])<<8 | uint16(rd[2*i+1])
		groups[i] = fmt.Sprintf("%x", v)
	}
	out := groups[0]
	for _, g := range groups[1:] {
		out += ":" + g
	}
	return out
}

// decodeTXT concatenates a run of length-prefixed character-strings.
// It preserves octet fidelity: the bytes are never interpreted as any
// particular text encoding.
func decodeTXT(rdata []byte) (string, error) {
	var out []byte
	pos := 0
	for pos < len(rdata) {
		n := int(rdata[pos])
		pos++
		if pos+n > len(rdata) {
			return "", ErrInvalidFormat
		}
		out = append(out, rdata[pos:pos+n]...)
		pos += n
	}
	return string(out), nil
}
