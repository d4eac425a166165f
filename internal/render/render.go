//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Package render turns decoded [wire.Response] values into the
// output cmd/dnsx prints: a plain multi-line listing, a compact
// "--short" form, or "--json". It is the "colorized/JSON output
// renderer" collaborator named in spec.md §1: it consumes only the
// wire package's public types, never anything from the orchestrator.
//
// No library in the retrieval pack supplies ANSI colorization (see
// DESIGN.md), so the handful of escape codes used here are the
// smallest reasonable hand-rolled substitute rather than an
// unjustified dependency.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bassosimone/dnsx/internal/wire"
)

// ColorMode mirrors the CLI's --color <when> values.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Result pairs one query's label with its outcome, for rendering.
type Result struct {
	Domain  string
	Type    wire.RecordType
	Class   wire.QClass
	Elapsed time.Duration
	Resp    wire.Response
}

// Options controls rendering. It corresponds to the output-only
// toggles in the library's Options struct (Short, JSON, Color,
// Seconds, Time).
type Options struct {
	Short   bool
	JSON    bool
	Color   ColorMode
	Seconds bool
	Time    bool
}

// Render writes results to w according to opts.
func Render(w io.Writer, results []Result, opts Options) error {
	if opts.JSON {
		return renderJSON(w, results, opts)
	}
	return renderText(w, results, opts)
}

const (
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiReset  = "\x1b[0m"
)

func paint(code, s string, on bool) string {
	if !on {
		return s
	}
	return code + s + ansiReset
}

func renderText(w io.Writer, results []Result, opts Options) error {
	colorOn := opts.Color == ColorAlways

	for _, r := range results {
		if opts.Time {
			fmt.Fprintf(w, "; query time: %s\n", formatDuration(r.Elapsed, opts.Seconds))
		}
		answers := r.Resp.Answers
		for _, a := range answers {
			if opts.Short {
				fmt.Fprintln(w, paint(ansiGreen, a.Data.String(), colorOn))
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
				paint(ansiCyan, a.Name, colorOn),
				a.TTL,
				a.Class,
				paint(ansiYellow, a.Type.String(), colorOn),
				paint(ansiGreen, a.Data.String(), colorOn))
		}
		if len(answers) == 0 && !opts.Short {
			fmt.Fprintf(w, "; no records for %s %s %s (rcode %d)\n", r.Domain, r.Type, r.Class, r.Resp.Flags.Rcode)
		}
	}
	return nil
}

func formatDuration(d time.Duration, seconds bool) string {
	if seconds {
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
	return d.String()
}

type jsonAnswer struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
	TTL   uint32 `json:"ttl"`
	Data  string `json:"data"`
}

type jsonResult struct {
	Domain      string       `json:"domain"`
	Type        string       `json:"type"`
	Class       string       `json:"class"`
	Rcode       uint8        `json:"rcode"`
	ElapsedMS   int64        `json:"elapsed_ms"`
	Answers     []jsonAnswer `json:"answers"`
	Authorities []jsonAnswer `json:"authorities,omitempty"`
	Additionals []jsonAnswer `json:"additionals,omitempty"`
}

func renderJSON(w io.Writer, results []Result, opts Options) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		out = append(out, jsonResult{
			Domain:      r.Domain,
			Type:        r.Type.String(),
			Class:       r.Class.String(),
			Rcode:       r.Resp.Flags.Rcode,
			ElapsedMS:   r.Elapsed.Milliseconds(),
			Answers:     toJSONAnswers(r.Resp.Answers),
			Authorities: toJSONAnswers(r.Resp.Authorities),
			Additionals: toJSONAnswers(r.Resp.Additionals),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONAnswers(answers []wire.Answer) []jsonAnswer {
	out := make([]jsonAnswer, 0, len(answers))
	for _, a := range answers {
		out = append(out, jsonAnswer{
			Name:  a.Name,
			Type:  a.Type.String(),
			Class: a.Class.String(),
			TTL:   a.TTL,
			Data:  a.Data.String(),
		})
	}
	return out
}
