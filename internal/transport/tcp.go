//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package transport

import (
	"context"
	"net"
	"time"
)

const tcpDefaultPort = "53"

// TCP is the length-framed TCP/53 transport.
type TCP struct {
	Timeout time.Duration
}

// Query dials nameserver, writes the 2-octet length prefix followed
// by request, reads a length-prefixed reply, and strips its prefix.
func (t TCP) Query(ctx context.Context, nameserver string, request []byte) ([]byte, error) {
	addr := ensurePort(nameserver, tcpDefaultPort)
	dl := deadline(ctx, t.Timeout)

	dialer := net.Dialer{Deadline: dl}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, wrapErr("dial", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(dl); err != nil {
		return nil, wrapErr("set-deadline", err)
	}
	if err := writeFramed(conn, request); err != nil {
		return nil, wrapErr("write", err)
	}
	resp, err := readFramed(conn)
	if err != nil {
		return nil, wrapErr("read", err)
	}
	return resp, nil
}
