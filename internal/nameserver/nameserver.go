//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Package nameserver discovers a default recursive resolver from OS
// state when the caller has not pinned one explicitly.
package nameserver

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"runtime"
	"strings"

	"k8s.io/klog/v2"
)

// Fallback is used on Windows, or when reading /etc/resolv.conf on a
// Unix-like host fails to yield a usable IPv4 entry.
const Fallback = "1.1.1.1"

const resolvConfPath = "/etc/resolv.conf"

var ipv4Pattern = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

// Default discovers the system's default recursive resolver.
//
// On Windows this is always [Fallback]. On Unix-like hosts it reads
// /etc/resolv.conf, collecting "nameserver" lines, discarding entries
// carrying a "%" zone id, and preferring the first IPv4 entry; any
// failure along the way (missing file, no usable entry) also yields
// [Fallback].
func Default() string {
	if runtime.GOOS == "windows" {
		return Fallback
	}
	f, err := os.Open(resolvConfPath)
	if err != nil {
		klog.V(2).Infof("nameserver: cannot open %s: %v, using fallback", resolvConfPath, err)
		return Fallback
	}
	defer f.Close()

	ns, ok := parseResolvConf(f)
	if !ok {
		klog.V(2).Infof("nameserver: no usable entry in %s, using fallback", resolvConfPath)
		return Fallback
	}
	klog.V(2).Infof("nameserver: using %s from %s", ns, resolvConfPath)
	return ns
}

// parseResolvConf scans r for "nameserver" lines and returns the
// first IPv4 entry that does not carry a link-local zone id.
func parseResolvConf(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}
		addr := fields[1]
		if strings.Contains(addr, "%") {
			continue
		}
		if IsIPv4Literal(addr) {
			return addr, true
		}
	}
	return "", false
}

// IsIPv4Literal reports whether s is a dotted-quad IPv4 literal (no
// port, no brackets, no IPv6).
func IsIPv4Literal(s string) bool {
	m := ipv4Pattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	for _, g := range m[1:] {
		if len(g) > 1 && g[0] == '0' {
			return false
		}
		var v int
		for _, c := range g {
			v = v*10 + int(c-'0')
		}
		if v > 255 {
			return false
		}
	}
	return true
}
