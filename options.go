//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnsx

import "time"

// EDNSSetting controls whether and how the client's OPT opt-ins are
// assembled and shown.
type EDNSSetting string

const (
	EDNSDisable EDNSSetting = "disable"
	EDNSHide    EDNSSetting = "hide"
	EDNSShow    EDNSSetting = "show"
)

// ColorSetting controls the renderer's use of ANSI color, matching
// the CLI's --color <when> values.
type ColorSetting string

const (
	ColorAuto   ColorSetting = "auto"
	ColorAlways ColorSetting = "always"
	ColorNever  ColorSetting = "never"
)

// Options configures a [Client]. It is a plain value: nothing about a
// Client outlives one [Client.Run] call, and Options carries no
// behavior of its own.
type Options struct {
	// Domains are the names to query. At least one is required.
	Domains []string

	// Types are record type selectors: mnemonics ("A", "MX", ...) or
	// their decimal numeric string form. Empty defaults to ["A"].
	Types []string

	// Classes are query class selectors: mnemonics ("IN", "CH", "HS").
	// Empty defaults to ["IN"].
	Classes []string

	// Nameserver pins the resolver to use. Empty means "discover one"
	// (see internal/nameserver), except when HTTPS is true, in which
	// case it is mandatory and must be a "https://" URL.
	Nameserver string

	// EDNS controls OPT-record opt-in assembly. Empty means
	// [EDNSDisable].
	EDNS EDNSSetting

	// TxID pins every query's transaction ID when non-nil, instead of
	// drawing a fresh random one per query.
	TxID *uint16

	// Tweaks are raw -Z-style tokens: "aa"/"authoritative",
	// "ad"/"authentic", "cd"/"checking-disabled", "bufsize=<n>".
	// Unrecognised tokens are silently ignored.
	Tweaks []string

	// UDP, TCP, TLS, HTTPS select a transport. At most one may be
	// true; none selected defaults to UDP.
	UDP, TCP, TLS, HTTPS bool

	// Timeout is the per-transport-attempt deadline. Zero means the
	// transport package's own default (5s).
	Timeout time.Duration

	// Retries is the number of attempts per query. Nil (the zero
	// value of the type) means "unset": the default is 3. A non-nil
	// value of zero or less, such as the one [Options.WithRetries]
	// sets when called with 0, is one attempt.
	Retries *int

	// Short, JSON, Color, Seconds, Time are output-only toggles
	// consumed by the renderer collaborator, not by [Client.Run].
	Short   bool
	JSON    bool
	Color   ColorSetting
	Seconds bool
	Time    bool
}

// WithRetries returns a copy of o with Retries pinned to n, so that an
// explicit 0 (one attempt) is distinguishable from "unset" (default 3
// attempts).
func (o Options) WithRetries(n int) Options {
	o.Retries = &n
	return o
}
