//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Package wire implements the DNS wire format: encoding queries and
// decoding responses per RFC 1035, including domain-name label
// compression and per-record-type RDATA handling.
//
// This package does not delegate parsing or serialization to any
// third-party DNS library. Every byte on the wire is produced and
// consumed here.
package wire

import "fmt"

// RecordType is a 16-bit DNS record type identifier.
type RecordType uint16

// Record types recognised by this package. Types not listed here are
// still decodable: their RDATA is preserved as [OpaqueData].
const (
	TypeA      RecordType = 1
	TypeNS     RecordType = 2
	TypeCNAME  RecordType = 5
	TypeSOA    RecordType = 6
	TypePTR    RecordType = 12
	TypeMX     RecordType = 15
	TypeTXT    RecordType = 16
	TypeAAAA   RecordType = 28
	TypeSRV    RecordType = 33
	TypeNAPTR  RecordType = 35
	TypeOPT    RecordType = 41
	TypeSSHFP  RecordType = 44
	TypeDNSKEY RecordType = 48
	TypeTLSA   RecordType = 52
	TypeCAA    RecordType = 257
)

var recordTypeNames = map[RecordType]string{
	TypeA:      "A",
	TypeNS:     "NS",
	TypeCNAME:  "CNAME",
	TypeSOA:    "SOA",
	TypePTR:    "PTR",
	TypeMX:     "MX",
	TypeTXT:    "TXT",
	TypeAAAA:   "AAAA",
	TypeSRV:    "SRV",
	TypeNAPTR:  "NAPTR",
	TypeOPT:    "OPT",
	TypeSSHFP:  "SSHFP",
	TypeDNSKEY: "DNSKEY",
	TypeTLSA:   "TLSA",
	TypeCAA:    "CAA",
}

// String returns the mnemonic for known types and a numeric
// fallback (e.g. "TYPE999") for unknown ones.
func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// IsKnownRecordType reports whether t is one of the enumerated
// constants in this package.
func IsKnownRecordType(t RecordType) bool {
	_, ok := recordTypeNames[t]
	return ok
}

// RecordTypeByName maps an uppercased mnemonic to its [RecordType].
// It is the inverse of [RecordType.String] for known types.
func RecordTypeByName(name string) (RecordType, bool) {
	for t, n := range recordTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// QClass is a 16-bit DNS query/record class identifier.
type QClass uint16

const (
	ClassIN QClass = 1
	ClassCH QClass = 3
	ClassHS QClass = 4
)

var classNames = map[QClass]string{
	ClassIN: "IN",
	ClassCH: "CH",
	ClassHS: "HS",
}

func (c QClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// ClassByName maps an uppercased mnemonic to its [QClass].
func ClassByName(name string) (QClass, bool) {
	for c, n := range classNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Query is a single DNS question.
//
// Name is a dot-joined sequence of labels. It is validated and
// wire-encoded by [EncodeQuery].
type Query struct {
	Name  string
	Type  RecordType
	Class QClass
}

// Answer is a single resource record extracted from a response's
// answer, authority, or additional section.
type Answer struct {
	Name  string
	Type  RecordType
	Class QClass
	TTL   uint32
	Data  RData
}

// Response is a fully decoded DNS response message.
type Response struct {
	ID          uint16
	Flags       Flags
	Answers     []Answer
	Authorities []Answer
	Additionals []Answer
}
