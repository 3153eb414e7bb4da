// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/ostafen/magicid/internal/match"
	"github.com/ostafen/magicid/internal/probe"
	"github.com/ostafen/magicid/internal/signature"
)

var jsonConfig = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    false,
}.Froze()

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Dedup collapses results for repeated paths: each path keeps the position of
// its first occurrence and the value of its last one.
func Dedup(results []probe.Result) []probe.Result {
	index := make(map[string]int, len(results))
	out := make([]probe.Result, 0, len(results))

	for _, r := range results {
		if i, found := index[r.Path]; found {
			out[i].Result = r.Result
			continue
		}
		index[r.Path] = len(out)
		out = append(out, r)
	}
	return out
}

// WriteText writes one "path: result" line per result.
func WriteText(w io.Writer, results []probe.Result, colored bool) error {
	for _, r := range Dedup(results) {
		res := r.Result
		if colored {
			res = colorize(res)
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Path, res); err != nil {
			return err
		}
	}
	return nil
}

func colorize(res string) string {
	attr := color.FgGreen
	switch res {
	case match.Unknown:
		attr = color.FgYellow
	case probe.FileNotFound, probe.PermissionDenied:
		attr = color.FgRed
	}

	// The caller already decided whether the output supports color.
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(res)
}

// WriteJSON writes the results as a single JSON object keyed by path, with
// keys in input order.
func WriteJSON(w io.Writer, results []probe.Result) error {
	results = Dedup(results)
	if len(results) == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}

	stream := jsoniter.NewStream(jsonConfig, w, 512)

	stream.WriteObjectStart()
	for i, r := range results {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(r.Path)
		stream.WriteString(r.Result)
	}
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

// WriteList writes one "HEX → Label" line per registry entry.
func WriteList(w io.Writer, reg *signature.Registry) error {
	for _, e := range reg.Entries() {
		sig := strings.ToUpper(hex.EncodeToString(e.Signature))
		if _, err := fmt.Fprintf(w, "%s → %s\n", sig, e.Label); err != nil {
			return err
		}
	}
	return nil
}
