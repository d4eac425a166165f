//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package transport

import (
	"context"
	"net"
	"time"
)

const udpDefaultPort = "53"

// maxUDPMessageSize is generous enough for any EDNS(0)-sized reply
// this client might request.
const maxUDPMessageSize = 65535

// UDP is the plain UDP/53 transport.
type UDP struct {
	// Timeout is the per-call deadline. Zero uses [DefaultTimeout].
	Timeout time.Duration
}

// Query sends request as a single IPv4 datagram and returns the first
// reply datagram verbatim.
func (u UDP) Query(ctx context.Context, nameserver string, request []byte) ([]byte, error) {
	addr := ensurePort(nameserver, udpDefaultPort)
	dl := deadline(ctx, u.Timeout)

	dialer := net.Dialer{Deadline: dl}
	conn, err := dialer.DialContext(ctx, "udp4", addr)
	if err != nil {
		return nil, wrapErr("dial", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(dl); err != nil {
		return nil, wrapErr("set-deadline", err)
	}
	if _, err := conn.Write(request); err != nil {
		return nil, wrapErr("write", err)
	}

	buf := make([]byte, maxUDPMessageSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, wrapErr("read", err)
	}
	return buf[:n], nil
}
