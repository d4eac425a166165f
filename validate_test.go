//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnsx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bassosimone/dnsx/internal/transport"
	"github.com/bassosimone/dnsx/internal/wire"
)

func TestNormalizeDefaults(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}})
	require.NoError(t, err)
	require.Len(t, n.Queries, 1)
	require.Equal(t, wire.TypeA, n.Queries[0].Type)
	require.Equal(t, wire.ClassIN, n.Queries[0].Class)
	require.Equal(t, transport.Udp, n.TransportKind)
	require.Equal(t, defaultRetries, n.Attempts)
}

func TestNormalizeCartesianProduct(t *testing.T) {
	n, err := normalize(Options{
		Domains: []string{"a.com", "b.com"},
		Types:   []string{"A", "MX"},
		Classes: []string{"IN"},
	})
	require.NoError(t, err)
	require.Len(t, n.Queries, 4)
	require.Equal(t, "a.com", n.Queries[0].Name)
	require.Equal(t, wire.TypeA, n.Queries[0].Type)
	require.Equal(t, "a.com", n.Queries[1].Name)
	require.Equal(t, wire.TypeMX, n.Queries[1].Type)
	require.Equal(t, "b.com", n.Queries[2].Name)
}

func TestNormalizeNoDomains(t *testing.T) {
	_, err := normalize(Options{})
	require.ErrorIs(t, err, ErrNoDomains)
}

func TestNormalizeInvalidDomain(t *testing.T) {
	_, err := normalize(Options{Domains: []string{".invalid"}})
	require.ErrorIs(t, err, ErrInvalidDomain)
}

func TestNormalizeInvalidType(t *testing.T) {
	_, err := normalize(Options{Domains: []string{"example.com"}, Types: []string{"BOGUS"}})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestNormalizeNumericType(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, Types: []string{"15"}})
	require.NoError(t, err)
	require.Equal(t, wire.TypeMX, n.Queries[0].Type)
}

func TestNormalizeUnknownNumericTypeRejected(t *testing.T) {
	_, err := normalize(Options{Domains: []string{"example.com"}, Types: []string{"65000"}})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestNormalizeInvalidClass(t *testing.T) {
	_, err := normalize(Options{Domains: []string{"example.com"}, Classes: []string{"XX"}})
	require.ErrorIs(t, err, ErrInvalidClass)
}

func TestNormalizeConflictingTransports(t *testing.T) {
	_, err := normalize(Options{Domains: []string{"example.com"}, UDP: true, TLS: true})
	require.ErrorIs(t, err, ErrConflictingTransports)
}

func TestNormalizeHTTPSRequiresURL(t *testing.T) {
	_, err := normalize(Options{Domains: []string{"example.com"}, HTTPS: true, Nameserver: "1.1.1.1"})
	require.ErrorIs(t, err, ErrHTTPSRequiresURL)
}

func TestNormalizeHTTPSAcceptsURL(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, HTTPS: true, Nameserver: "https://dns.google/dns-query"})
	require.NoError(t, err)
	require.Equal(t, transport.Https, n.TransportKind)
	require.Equal(t, "https://dns.google/dns-query", n.Nameserver)
}

func TestNormalizeNameserverIPv4LiteralAccepted(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, Nameserver: "8.8.8.8:53"})
	require.NoError(t, err)
	require.Equal(t, "8.8.8.8:53", n.Nameserver)
}

func TestNormalizeNameserverIPv6LiteralFallsBackToDiscovery(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, Nameserver: "2001:db8::1"})
	require.NoError(t, err)
	require.NotEqual(t, "2001:db8::1", n.Nameserver)
}

func TestNormalizeRetriesZeroMeansOneAttempt(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}}.WithRetries(0))
	require.NoError(t, err)
	require.Equal(t, 1, n.Attempts)
}

func TestNormalizeRetriesExplicit(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}}.WithRetries(5))
	require.NoError(t, err)
	require.Equal(t, 5, n.Attempts)
}

func TestNormalizeTweaksDeriveEDNSHide(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, Tweaks: []string{"bufsize=4096"}})
	require.NoError(t, err)
	require.Equal(t, wire.EDNSHide, n.EDNSMode)
	require.Equal(t, uint16(4096), n.Tweaks.BufSize)
}

func TestNormalizeTweaksExplicitEDNSShowWins(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"example.com"}, EDNS: EDNSShow, Tweaks: []string{"aa", "cd"}})
	require.NoError(t, err)
	require.Equal(t, wire.EDNSShow, n.EDNSMode)
	require.True(t, n.Tweaks.AA)
	require.True(t, n.Tweaks.CD)
}

func TestNormalizeIDNADomain(t *testing.T) {
	n, err := normalize(Options{Domains: []string{"münchen.de"}})
	require.NoError(t, err)
	require.Equal(t, "xn--mnchen-3ya.de", n.Queries[0].Name)
}
