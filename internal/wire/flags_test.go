//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{"AllZero", Flags{}},
		{"QueryWithRD", Flags{RD: true}},
		{"ResponseNoError", Flags{QR: true, RA: true, RD: true}},
		{"ResponseNXDOMAIN", Flags{QR: true, RA: true, RD: true, Rcode: 3}},
		{"AuthoritativeTruncated", Flags{QR: true, AA: true, TC: true}},
		{"AllBitsExceptZ", Flags{QR: true, Opcode: 0xF, AA: true, TC: true, RD: true, RA: true, AD: true, CD: true, Rcode: 0xF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.flags.Encode()
			decoded := DecodeFlags(encoded)
			require.Equal(t, tt.flags, decoded)
		})
	}
}

func TestFlagsEncodeLayout(t *testing.T) {
	// QR=1, OPCODE=0, AA=0, TC=0, RD=1 -> byte0 = 1000_0001 = 0x81
	// RA=0, Z=0, AD=1, CD=0, RCODE=0 -> byte1 = 0010_0000 = 0x20
	f := Flags{QR: true, RD: true, AD: true}
	require.Equal(t, uint16(0x8120), f.Encode())
}

func TestFlagsZAlwaysZeroOnEncode(t *testing.T) {
	f := Flags{QR: true}
	encoded := f.Encode()
	require.Equal(t, uint16(0), encoded&0x0040)
}

func TestDecodeFlagsIgnoresZ(t *testing.T) {
	// Z bit set on the wire must not surface anywhere in the decoded value.
	raw := uint16(0x0040)
	decoded := DecodeFlags(raw)
	require.Equal(t, Flags{}, decoded)
}
