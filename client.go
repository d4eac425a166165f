//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnsx

import (
	"context"
	"time"

	"k8s.io/klog/v2"

	"github.com/bassosimone/dnsx/internal/transport"
	"github.com/bassosimone/dnsx/internal/wire"
)

// Client drives a single [Client.Run] over a validated [Options]
// value. Construct with [New]; nothing about a Client outlives one
// Run call (see spec.md §3 "Lifecycle & ownership").
type Client struct {
	opts normalized
}

// New validates and normalises opts (§4.5) and returns a [Client]
// ready to [Client.Run]. Validation errors (the "InvalidOptions"
// umbrella) surface here, before any I/O.
func New(opts Options) (*Client, error) {
	n, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	return &Client{opts: n}, nil
}

// transportFor builds the [transport.Transport] for kind, sharing the
// client's configured timeout.
func (c *Client) transportFor(kind transport.Kind) transport.Transport {
	switch kind {
	case transport.Tcp:
		return transport.TCP{Timeout: c.opts.Timeout}
	case transport.Tls:
		return transport.TLS{Timeout: c.opts.Timeout}
	case transport.Https:
		return transport.HTTPS{Timeout: c.opts.Timeout}
	default:
		return transport.UDP{Timeout: c.opts.Timeout}
	}
}

// Run expands the (domains x types x classes) product, drives the
// selected transport for each query with retries and backoff, and
// returns the parsed responses in product order.
//
// A single query that exhausts its attempts aborts the whole run: the
// error from its last attempt is returned as-is. An empty result list
// (only possible for an empty query product, which [New] already
// rejects with [ErrNoDomains]) is itself reported as [ErrNoResponses].
func (c *Client) Run(ctx context.Context) ([]wire.Response, error) {
	primary := c.transportFor(c.opts.TransportKind)
	tcpFallback := transport.TCP{Timeout: c.opts.Timeout}

	results := make([]wire.Response, 0, len(c.opts.Queries))
	for _, q := range c.opts.Queries {
		resp, err := c.runOne(ctx, q, primary, tcpFallback)
		if err != nil {
			return nil, err
		}
		results = append(results, resp)
	}

	if len(results) == 0 {
		return nil, ErrNoResponses
	}
	return results, nil
}

// runOne drives one query to completion: up to c.opts.Attempts tries
// of the selected transport, exponential backoff between them, and a
// UDP-to-TCP retry on a truncated reply.
func (c *Client) runOne(ctx context.Context, q query, primary, tcpFallback transport.Transport) (wire.Response, error) {
	wireQuery := wire.Query{Name: q.Name, Type: q.Type, Class: q.Class}

	var lastErr error
	for attempt := 1; attempt <= c.opts.Attempts; attempt++ {
		encOpts := wire.NewEncodeOptions()
		if c.opts.PinnedTxID != nil {
			encOpts.ID = *c.opts.PinnedTxID
		}
		encOpts.EDNS = c.opts.EDNSMode
		encOpts.Tweaks = c.opts.Tweaks

		raw, err := wire.EncodeQuery(wireQuery, encOpts)
		if err != nil {
			return wire.Response{}, err
		}

		resp, err := c.exchange(ctx, primary, tcpFallback, encOpts.ID, raw)
		if err == nil {
			klog.V(1).Infof("dnsx: %s %s %s succeeded on attempt %d", q.Name, q.Type, q.Class, attempt)
			return resp, nil
		}

		lastErr = err
		klog.V(1).Infof("dnsx: %s %s %s attempt %d failed: %v", q.Name, q.Type, q.Class, attempt, err)
		if attempt < c.opts.Attempts {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return wire.Response{}, err
			}
		}
	}
	return wire.Response{}, lastErr
}

// exchange sends raw over the selected transport, decodes the reply,
// and follows the truncation fallback to TCP when the selected
// transport is UDP and the reply's TC bit is set.
func (c *Client) exchange(ctx context.Context, primary, tcpFallback transport.Transport, id uint16, raw []byte) (wire.Response, error) {
	rawResp, err := primary.Query(ctx, c.opts.Nameserver, raw)
	if err != nil {
		return wire.Response{}, err
	}
	resp, err := decodeAndCheck(rawResp, id)
	if err != nil {
		return wire.Response{}, err
	}

	if c.opts.TransportKind == transport.Udp && resp.Flags.TC {
		klog.V(1).Infof("dnsx: truncated UDP reply, retrying over TCP")
		rawResp, err = tcpFallback.Query(ctx, c.opts.Nameserver, raw)
		if err != nil {
			return wire.Response{}, err
		}
		resp, err = decodeAndCheck(rawResp, id)
		if err != nil {
			return wire.Response{}, err
		}
	}
	return resp, nil
}

func decodeAndCheck(raw []byte, id uint16) (wire.Response, error) {
	resp, err := wire.DecodeResponse(raw)
	if err != nil {
		return wire.Response{}, err
	}
	if err := wire.CheckTxID(resp, id); err != nil {
		return wire.Response{}, err
	}
	return resp, nil
}

// sleepBackoff waits before the attempt following attemptNumber. Per
// the invariant in spec.md §8, waits before attempts 2..k are
// 1000ms, 2000ms, 4000ms, ...: 1000 * 2^(attemptNumber-1).
func sleepBackoff(ctx context.Context, attemptNumber int) error {
	d := time.Duration(1000*(1<<uint(attemptNumber-1))) * time.Millisecond
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
