//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Command dnsx is a DNS resolver client. See spec.md §6 for its full
// surface; this file wires cobra/pflag onto the library's [dnsx.Client].
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/bassosimone/dnsx"
	"github.com/bassosimone/dnsx/internal/render"
	"github.com/bassosimone/dnsx/internal/wire"
)

// knownTypeMnemonics are the uppercase tokens the positional-argument
// parser recognises as record types rather than domains.
var knownTypeMnemonics = map[string]bool{
	"A": true, "AAAA": true, "NS": true, "MX": true, "TXT": true,
	"SRV": true, "PTR": true, "CNAME": true, "SOA": true, "CAA": true,
}

type cliFlags struct {
	query      string
	types      []string
	nameserver string
	classes    []string
	edns       string
	txid       int64
	tweaks     []string
	udp        bool
	tcp        bool
	tls        bool
	https      bool
	short      bool
	json       bool
	color      string
	seconds    bool
	timeFlag   bool
	verbose    bool
	timeoutMs  int
	retries    int
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	klog.InitFlags(nil)

	var flags cliFlags
	var domains []string
	var types []string
	var success bool

	cmd := &cobra.Command{
		Use:           "dnsx [domains-or-types...]",
		Short:         "A DNS resolver client",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, positional []string) error {
			for _, tok := range positional {
				if knownTypeMnemonics[strings.ToUpper(tok)] {
					types = append(types, strings.ToUpper(tok))
				} else {
					domains = append(domains, tok)
				}
			}
			if flags.query != "" {
				domains = append(domains, flags.query)
			}
			types = append(types, flags.types...)

			if flags.verbose {
				_ = flag.Set("v", "2")
			}

			opts := dnsx.Options{
				Domains:    domains,
				Types:      types,
				Classes:    flags.classes,
				Nameserver: flags.nameserver,
				EDNS:       dnsx.EDNSSetting(flags.edns),
				Tweaks:     flags.tweaks,
				UDP:        flags.udp,
				TCP:        flags.tcp,
				TLS:        flags.tls,
				HTTPS:      flags.https,
				Timeout:    time.Duration(flags.timeoutMs) * time.Millisecond,
				Short:      flags.short,
				JSON:       flags.json,
				Color:      dnsx.ColorSetting(flags.color),
				Seconds:    flags.seconds,
				Time:       flags.timeFlag,
			}
			if cmd.Flags().Changed("txid") {
				id := uint16(flags.txid)
				opts.TxID = &id
			}
			if cmd.Flags().Changed("retries") {
				opts = opts.WithRetries(flags.retries)
			}

			ok, err := runQuery(opts)
			success = ok
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.query, "query", "q", "", "domain to query")
	f.StringArrayVarP(&flags.types, "type", "t", nil, "record type (repeatable)")
	f.StringVarP(&flags.nameserver, "nameserver", "n", "", "nameserver to use")
	f.StringArrayVar(&flags.classes, "class", nil, "query class (repeatable)")
	f.StringVar(&flags.edns, "edns", "", "EDNS(0) opt-in: disable|hide|show")
	f.Int64Var(&flags.txid, "txid", 0, "pin the query transaction id")
	f.StringArrayVarP(&flags.tweaks, "tweak", "Z", nil, "protocol tweak token (repeatable)")
	f.BoolVarP(&flags.udp, "udp", "U", false, "use UDP")
	f.BoolVarP(&flags.tcp, "tcp", "T", false, "use TCP")
	f.BoolVarP(&flags.tls, "tls", "S", false, "use DNS-over-TLS")
	f.BoolVarP(&flags.https, "https", "H", false, "use DNS-over-HTTPS")
	f.BoolVarP(&flags.short, "short", "1", false, "print only record data")
	f.BoolVarP(&flags.json, "json", "J", false, "print JSON")
	f.StringVar(&flags.color, "color", "auto", "colorize output: auto|always|never")
	f.BoolVar(&flags.seconds, "seconds", false, "render durations in seconds")
	f.BoolVar(&flags.timeFlag, "time", false, "print query timing")
	f.BoolVar(&flags.verbose, "verbose", false, "enable verbose logging")
	f.IntVar(&flags.timeoutMs, "timeout", 5000, "per-attempt timeout in milliseconds")
	f.IntVar(&flags.retries, "retries", 3, "attempts per query")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dnsx:", err)
		return 1
	}
	if !success {
		return 1
	}
	return 0
}

// runQuery runs one client.Run and renders its output. It reports
// success as true only when the run produced at least one response,
// per spec.md §6's exit-code rule.
func runQuery(opts dnsx.Options) (bool, error) {
	client, err := dnsx.New(opts)
	if err != nil {
		return false, err
	}

	labels := queryLabels(opts)
	start := time.Now()
	responses, err := client.Run(context.Background())
	elapsed := time.Since(start)
	if err != nil {
		return false, err
	}

	results := make([]render.Result, 0, len(responses))
	for i, resp := range responses {
		label := labels[i]
		results = append(results, render.Result{
			Domain:  label.domain,
			Type:    label.typ,
			Class:   label.class,
			Elapsed: elapsed,
			Resp:    resp,
		})
	}

	renderOpts := render.Options{
		Short:   opts.Short,
		JSON:    opts.JSON,
		Color:   render.ColorMode(opts.Color),
		Seconds: opts.Seconds,
		Time:    opts.Time,
	}
	if err := render.Render(os.Stdout, results, renderOpts); err != nil {
		return false, err
	}

	return len(results) > 0, nil
}

type queryLabel struct {
	domain string
	typ    wire.RecordType
	class  wire.QClass
}

// queryLabels reconstructs the same (domains x types x classes)
// product the orchestrator computes, purely so the renderer can label
// each response; it mirrors dnsx's own defaulting rules.
func queryLabels(opts dnsx.Options) []queryLabel {
	types := opts.Types
	if len(types) == 0 {
		types = []string{"A"}
	}
	classes := opts.Classes
	if len(classes) == 0 {
		classes = []string{"IN"}
	}

	var out []queryLabel
	for _, d := range opts.Domains {
		for _, t := range types {
			for _, c := range classes {
				out = append(out, queryLabel{
					domain: d,
					typ:    parseTypeLabel(t),
					class:  parseClassLabel(c),
				})
			}
		}
	}
	return out
}

func parseTypeLabel(s string) wire.RecordType {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return wire.RecordType(n)
	}
	t, _ := wire.RecordTypeByName(strings.ToUpper(s))
	return t
}

func parseClassLabel(s string) wire.QClass {
	c, _ := wire.ClassByName(strings.ToUpper(s))
	return c
}
