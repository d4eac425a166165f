//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import "errors"

// These sentinel errors cover the "Wire" umbrella from the error
// taxonomy: they are returned verbatim (or wrapped with fmt.Errorf's
// %w) by [EncodeQuery] and [DecodeResponse].
var (
	// ErrInvalidLabel means a label exceeded 63 octets, was empty
	// (leading, trailing or consecutive dots), held a byte other than
	// an ASCII letter, digit or hyphen, or a length octet used the
	// reserved 10/01 bit pattern.
	ErrInvalidLabel = errors.New("dnsx/wire: invalid label")

	// ErrInvalidName means a fully encoded (or reconstructed) name
	// exceeded 255 octets.
	ErrInvalidName = errors.New("dnsx/wire: invalid name")

	// ErrTruncatedPacket means the buffer ended before a field or
	// RDATA run it declared could be read in full.
	ErrTruncatedPacket = errors.New("dnsx/wire: truncated packet")

	// ErrInvalidLength means an A or AAAA RDATA did not carry exactly
	// 4 or 16 octets respectively.
	ErrInvalidLength = errors.New("dnsx/wire: invalid rdata length")

	// ErrInvalidFormat means the parse cursor did not land where the
	// record's own preamble said it would, an MX RDATA was shorter than
	// its 2-octet preference, or a TXT character-string ran past the
	// end of its RDATA.
	ErrInvalidFormat = errors.New("dnsx/wire: invalid message format")

	// ErrInvalidPointer means a compression pointer looped, pointed
	// forward, or exceeded the jump cap.
	ErrInvalidPointer = errors.New("dnsx/wire: invalid compression pointer")

	// ErrNotAResponse means the QR bit was not set.
	ErrNotAResponse = errors.New("dnsx/wire: message is not a response")

	// ErrTxIDMismatch means a response's header ID did not match the
	// ID of the query it was checked against. See [CheckTxID].
	ErrTxIDMismatch = errors.New("dnsx/wire: transaction id mismatch")
)

// CheckTxID rejects a response whose ID does not match the query it
// is meant to answer. The decoder itself does not have the query ID
// in scope, so callers invoke this once they do.
func CheckTxID(resp Response, queryID uint16) error {
	if resp.ID != queryID {
		return ErrTxIDMismatch
	}
	return nil
}
