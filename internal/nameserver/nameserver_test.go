//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package nameserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResolvConf(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "single entry",
			content: "nameserver 8.8.8.8\n",
			want:    "8.8.8.8",
			wantOK:  true,
		},
		{
			name:    "prefers first IPv4",
			content: "nameserver 2001:db8::1\nnameserver 8.8.4.4\n",
			want:    "8.8.4.4",
			wantOK:  true,
		},
		{
			name:    "skips zone id literal",
			content: "nameserver fe80::1%eth0\nnameserver 1.0.0.1\n",
			want:    "1.0.0.1",
			wantOK:  true,
		},
		{
			name:    "comments and options ignored",
			content: "# comment\noptions rotate\nnameserver 9.9.9.9\n",
			want:    "9.9.9.9",
			wantOK:  true,
		},
		{
			name:    "no nameserver lines",
			content: "search example.com\n",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "only ipv6 entries",
			content: "nameserver 2001:db8::53\n",
			want:    "",
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseResolvConf(strings.NewReader(tt.content))
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsIPv4Literal(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"1.2.3.4", true},
		{"255.255.255.255", true},
		{"0.0.0.0", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"01.2.3.4", false},
		{"2606:2800:220:1::1", false},
		{"example.com", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IsIPv4Literal(tt.addr), tt.addr)
	}
}
