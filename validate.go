//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnsx

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/bassosimone/dnsx/internal/nameserver"
	"github.com/bassosimone/dnsx/internal/transport"
	"github.com/bassosimone/dnsx/internal/wire"
)

const defaultRetries = 3

// query is one element of the (domains x types x classes) cartesian
// product, in declaration order.
type query struct {
	Name  string
	Type  wire.RecordType
	Class wire.QClass
}

// normalized is the validated, defaulted form of [Options] the
// orchestrator drives.
type normalized struct {
	Queries       []query
	TransportKind transport.Kind
	Nameserver    string
	Timeout       time.Duration
	Attempts      int
	EDNSMode      wire.EDNSMode
	Tweaks        wire.Tweaks
	PinnedTxID    *uint16
}

// normalize validates opts and expands it into the form the
// orchestrator needs, per §4.5's rules. It performs no I/O.
func normalize(opts Options) (normalized, error) {
	if len(opts.Domains) == 0 {
		return normalized{}, ErrNoDomains
	}
	domains, err := normalizeDomains(opts.Domains)
	if err != nil {
		return normalized{}, err
	}

	types, err := normalizeTypes(opts.Types)
	if err != nil {
		return normalized{}, err
	}
	classes, err := normalizeClasses(opts.Classes)
	if err != nil {
		return normalized{}, err
	}

	kind, err := selectTransport(opts)
	if err != nil {
		return normalized{}, err
	}

	ns, err := selectNameserver(opts, kind)
	if err != nil {
		return normalized{}, err
	}

	attempts := defaultRetries
	if opts.Retries != nil {
		if *opts.Retries <= 0 {
			attempts = 1
		} else {
			attempts = *opts.Retries
		}
	}

	ednsMode, tweaks := normalizeTweaks(opts)

	queries := make([]query, 0, len(domains)*len(types)*len(classes))
	for _, d := range domains {
		for _, t := range types {
			for _, c := range classes {
				queries = append(queries, query{Name: d, Type: t, Class: c})
			}
		}
	}

	return normalized{
		Queries:       queries,
		TransportKind: kind,
		Nameserver:    ns,
		Timeout:       opts.Timeout,
		Attempts:      attempts,
		EDNSMode:      ednsMode,
		Tweaks:        tweaks,
		PinnedTxID:    opts.TxID,
	}, nil
}

// normalizeDomains IDNA-encodes each domain to its ASCII (A-label)
// form, exactly as the teacher package's Query.NewMsg does, and then
// validates that ASCII form against the wire label/name-length rules.
func normalizeDomains(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		ascii, err := idna.Lookup.ToASCII(d)
		if err != nil {
			return nil, ErrInvalidDomain
		}
		ascii = strings.TrimSuffix(ascii, ".")
		if err := wire.ValidateName(ascii); err != nil {
			return nil, ErrInvalidDomain
		}
		out = append(out, ascii)
	}
	return out, nil
}

func normalizeTypes(raw []string) ([]wire.RecordType, error) {
	if len(raw) == 0 {
		return []wire.RecordType{wire.TypeA}, nil
	}
	out := make([]wire.RecordType, 0, len(raw))
	for _, s := range raw {
		t, err := parseType(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseType(s string) (wire.RecordType, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		t := wire.RecordType(n)
		if !wire.IsKnownRecordType(t) {
			return 0, ErrInvalidType
		}
		return t, nil
	}
	t, ok := wire.RecordTypeByName(strings.ToUpper(s))
	if !ok {
		return 0, ErrInvalidType
	}
	return t, nil
}

func normalizeClasses(raw []string) ([]wire.QClass, error) {
	if len(raw) == 0 {
		return []wire.QClass{wire.ClassIN}, nil
	}
	out := make([]wire.QClass, 0, len(raw))
	for _, s := range raw {
		c, ok := wire.ClassByName(strings.ToUpper(s))
		if !ok {
			return nil, ErrInvalidClass
		}
		out = append(out, c)
	}
	return out, nil
}

func selectTransport(opts Options) (transport.Kind, error) {
	count := 0
	var kind transport.Kind
	if opts.UDP {
		count++
		kind = transport.Udp
	}
	if opts.TCP {
		count++
		kind = transport.Tcp
	}
	if opts.TLS {
		count++
		kind = transport.Tls
	}
	if opts.HTTPS {
		count++
		kind = transport.Https
	}
	if count > 1 {
		return 0, ErrConflictingTransports
	}
	if count == 0 {
		return transport.Udp, nil
	}
	if kind == transport.Https && !strings.HasPrefix(opts.Nameserver, "https://") {
		return 0, ErrHTTPSRequiresURL
	}
	return kind, nil
}

// selectNameserver implements §4.3's selection order. A non-HTTPS
// nameserver is only accepted if it is a dotted-quad IPv4 literal
// (optionally with a :port); anything else falls back to discovery,
// including any bare IPv6 literal.
func selectNameserver(opts Options, kind transport.Kind) (string, error) {
	if opts.Nameserver != "" {
		if kind == transport.Https {
			return opts.Nameserver, nil
		}
		host, _, _ := strings.Cut(opts.Nameserver, ":")
		if nameserver.IsIPv4Literal(host) {
			return opts.Nameserver, nil
		}
	}
	return nameserver.Default(), nil
}

// normalizeTweaks parses -Z-style tokens into wire-level tweaks and
// derives an EDNS mode: an explicit bufsize= token implies at least
// [wire.EDNSHide] even if Options.EDNS was left unset.
func normalizeTweaks(opts Options) (wire.EDNSMode, wire.Tweaks) {
	var tw wire.Tweaks
	haveBufSize := false

	for _, tok := range opts.Tweaks {
		switch {
		case tok == "aa" || tok == "authoritative":
			tw.AA = true
		case tok == "ad" || tok == "authentic":
			tw.AD = true
		case tok == "cd" || tok == "checking-disabled":
			tw.CD = true
		case strings.HasPrefix(tok, "bufsize="):
			if n, err := strconv.ParseUint(strings.TrimPrefix(tok, "bufsize="), 10, 16); err == nil {
				tw.BufSize = uint16(n)
				haveBufSize = true
			}
		}
		// Unknown tokens are silently ignored.
	}

	mode := wire.EDNSDisable
	switch opts.EDNS {
	case EDNSShow:
		mode = wire.EDNSShow
	case EDNSHide:
		mode = wire.EDNSHide
	case EDNSDisable, "":
		mode = wire.EDNSDisable
	}
	if mode == wire.EDNSDisable && haveBufSize {
		mode = wire.EDNSHide
	}
	return mode, tw
}
