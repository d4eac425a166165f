//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

const dnsMessageContentType = "application/dns-message"

// HTTPS is the DNS-over-HTTPS transport (RFC 8484).
type HTTPS struct {
	Timeout time.Duration

	// Client is the HTTP client to use. A nil Client gets a fresh,
	// default [http.Client]; the call's deadline is carried by the
	// request's context either way.
	Client *http.Client
}

// Query POSTs request as the raw DNS message body to nameserver
// (parsed as a URL if it is one, otherwise treated as
// https://<host>/dns-query), and returns the raw reply body.
func (h HTTPS) Query(ctx context.Context, nameserver string, request []byte) ([]byte, error) {
	target := resolveDoHURL(nameserver)

	dl := deadline(ctx, h.Timeout)
	reqCtx, cancel := context.WithDeadline(ctx, dl)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, target, bytes.NewReader(request))
	if err != nil {
		return nil, wrapErr("build-request", err)
	}
	httpReq.Header.Set("Content-Type", dnsMessageContentType)
	httpReq.Header.Set("Accept", dnsMessageContentType)

	client := h.Client
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, wrapErr("post", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{Status: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); ct != dnsMessageContentType {
		return nil, &HTTPContentTypeError{ContentType: ct}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr("read-body", err)
	}
	return body, nil
}

// resolveDoHURL returns nameserver unchanged if it already parses as
// an absolute URL, otherwise builds the conventional
// https://<host>/dns-query endpoint.
func resolveDoHURL(nameserver string) string {
	if u, err := url.Parse(nameserver); err == nil && u.Scheme != "" && u.Host != "" {
		return nameserver
	}
	return "https://" + nameserver + "/dns-query"
}
