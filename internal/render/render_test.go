//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bassosimone/dnsx/internal/wire"
)

func sampleResult() Result {
	return Result{
		Domain:  "example.com",
		Type:    wire.TypeA,
		Class:   wire.ClassIN,
		Elapsed: 42 * time.Millisecond,
		Resp: wire.Response{
			Answers: []wire.Answer{
				{Name: "example.com", Type: wire.TypeA, Class: wire.ClassIN, TTL: 300, Data: wire.AData{Address: "93.184.216.34"}},
			},
		},
	}
}

func TestRenderTextIncludesAnswer(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{})
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.Contains(out, "example.com"))
	require.True(t, strings.Contains(out, "93.184.216.34"))
	require.True(t, strings.Contains(out, "A"))
}

func TestRenderTextShortOmitsMetadata(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{Short: true})
	require.NoError(t, err)
	out := strings.TrimSpace(buf.String())
	require.Equal(t, "93.184.216.34", out)
}

func TestRenderTextNoAnswers(t *testing.T) {
	r := sampleResult()
	r.Resp.Answers = nil
	r.Resp.Flags.Rcode = 3

	var buf bytes.Buffer
	err := Render(&buf, []Result{r}, Options{})
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "rcode 3"))
}

func TestRenderTextColorAlwaysAddsEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{Color: ColorAlways})
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "\x1b["))
}

func TestRenderTextColorNeverOmitsEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{Color: ColorNever})
	require.NoError(t, err)
	require.False(t, strings.Contains(buf.String(), "\x1b["))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{JSON: true})
	require.NoError(t, err)

	var out []jsonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, "example.com", out[0].Domain)
	require.Equal(t, "A", out[0].Type)
	require.Len(t, out[0].Answers, 1)
	require.Equal(t, "93.184.216.34", out[0].Answers[0].Data)
}

func TestRenderTimeSeconds(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Result{sampleResult()}, Options{Time: true, Seconds: true})
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "0.042s"))
}
