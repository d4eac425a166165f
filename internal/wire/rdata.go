//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import "fmt"

// RData is a tagged variant of the record-specific payload of a
// resource record. There is one concrete type per record type this
// package understands, plus [OpaqueData] for everything else.
type RData interface {
	isRData()

	// String renders the RDATA the way a human-readable listing would.
	String() string
}

// AData is the RDATA of an A record: an IPv4 address.
type AData struct {
	Address string
}

func (AData) isRData()         {}
func (d AData) String() string { return d.Address }

// AAAAData is the RDATA of an AAAA record: an IPv6 address, rendered
// as eight lowercase hex groups with no leading-zero padding and no
// zero-run compression (i.e. not RFC 5952 canonical form).
type AAAAData struct {
	Address string
}

func (AAAAData) isRData()         {}
func (d AAAAData) String() string { return d.Address }

// NameData is the RDATA of a CNAME, NS, or PTR record: a single
// (compression-resolved) domain name.
type NameData struct {
	Name string
}

func (NameData) isRData()         {}
func (d NameData) String() string { return d.Name }

// MXData is the RDATA of an MX record.
type MXData struct {
	Preference uint16
	Exchange   string
}

func (MXData) isRData() {}
func (d MXData) String() string {
	return fmt.Sprintf("%d %s", d.Preference, d.Exchange)
}

// TXTData is the RDATA of a TXT record: the concatenation of its
// character-strings, preserved with full octet fidelity.
type TXTData struct {
	Text string
}

func (TXTData) isRData()         {}
func (d TXTData) String() string { return d.Text }

// OpaqueData is the RDATA of any record type this package does not
// otherwise handle, rendered as lowercase hex.
type OpaqueData struct {
	Hex string
}

func (OpaqueData) isRData()         {}
func (d OpaqueData) String() string { return d.Hex }
