//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package transport

import (
	"errors"
	"fmt"
	"net"
)

// These sentinel errors and error types cover the "Transport"
// umbrella from the error taxonomy.
var (
	// ErrTransportTimeout means the per-call deadline elapsed before a
	// reply arrived.
	ErrTransportTimeout = errors.New("dnsx/transport: timeout")

	// ErrTlsAuthFailed means the DoT peer's certificate did not verify.
	ErrTlsAuthFailed = errors.New("dnsx/transport: tls certificate verification failed")
)

// HTTPStatusError means a DoH server replied with a status other than
// 200 OK.
type HTTPStatusError struct {
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("dnsx/transport: unexpected http status %d", e.Status)
}

// HTTPContentTypeError means a DoH server replied with a Content-Type
// other than application/dns-message.
type HTTPContentTypeError struct {
	ContentType string
}

func (e *HTTPContentTypeError) Error() string {
	return fmt.Sprintf("dnsx/transport: unexpected content-type %q", e.ContentType)
}

// wrapErr classifies a raw network error into the Transport umbrella:
// timeouts become [ErrTransportTimeout], everything else is wrapped
// with op for diagnostics.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTransportTimeout
	}
	return fmt.Errorf("dnsx/transport: %s: %w", op, err)
}
