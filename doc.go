// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnsx is a DNS resolver client: given domain names and
// record-type selectors, it builds DNS queries, sends them to a
// recursive resolver over UDP, TCP, TLS, or HTTPS, and returns parsed
// responses.
//
// [New] and [*Client] cover the whole flow. Wire encoding and
// decoding live in internal/wire, the four transports in
// internal/transport, and default-nameserver discovery in
// internal/nameserver; none of that is part of this package's public
// surface.
package dnsx
