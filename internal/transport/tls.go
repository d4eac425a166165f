//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"time"
)

const tlsDefaultPort = "853"

// TLS is the DNS-over-TLS transport (RFC 7858): length framing
// identical to TCP, wrapped in a TLS session with the peer's
// certificate verified against the host from nameserver.
type TLS struct {
	Timeout time.Duration
}

// Query dials nameserver over TLS with SNI set to its host, then uses
// the same length-framed exchange as [TCP.Query].
func (t TLS) Query(ctx context.Context, nameserver string, request []byte) ([]byte, error) {
	addr := ensurePort(nameserver, tlsDefaultPort)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = nameserver
	}
	dl := deadline(ctx, t.Timeout)

	dialer := &net.Dialer{Deadline: dl}
	tlsConn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		if isCertError(err) {
			return nil, ErrTlsAuthFailed
		}
		return nil, wrapErr("dial", err)
	}
	defer tlsConn.Close()

	if err := tlsConn.SetDeadline(dl); err != nil {
		return nil, wrapErr("set-deadline", err)
	}
	if err := writeFramed(tlsConn, request); err != nil {
		return nil, wrapErr("write", err)
	}
	resp, err := readFramed(tlsConn)
	if err != nil {
		return nil, wrapErr("read", err)
	}
	return resp, nil
}

func isCertError(err error) bool {
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameError x509.HostnameError
	var certInvalid x509.CertificateInvalidError
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostnameError) ||
		errors.As(err, &certInvalid)
}
