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
package match

import (
	"bytes"
	"slices"

	"github.com/ostafen/magicid/internal/signature"
)

// Unknown is reported when no signature matches.
const Unknown = "Unknown"

// Matcher classifies buffers against a fixed signature registry.
// It holds no mutable state and can be shared between goroutines.
type Matcher struct {
	candidates []signature.Entry
	maxLen     int
}

// New builds a matcher for reg. Candidates are ordered by signature length,
// longest first, and equal-length signatures by ascending byte order.
func New(reg *signature.Registry) *Matcher {
	candidates := reg.Entries()
	slices.SortStableFunc(candidates, func(a, b signature.Entry) int {
		if len(a.Signature) != len(b.Signature) {
			return len(b.Signature) - len(a.Signature)
		}
		return bytes.Compare(a.Signature, b.Signature)
	})

	return &Matcher{
		candidates: candidates,
		maxLen:     reg.MaxLen(),
	}
}

// Detect returns the label of the longest signature that prefixes buf, or Unknown.
func (m *Matcher) Detect(buf []byte) string {
	for _, c := range m.candidates {
		if bytes.HasPrefix(buf, c.Signature) {
			return c.Label
		}
	}
	return Unknown
}

// MaxLen returns the number of bytes needed to evaluate every signature.
func (m *Matcher) MaxLen() int {
	return m.maxLen
}

// Detect classifies buf against reg. Use New when classifying many buffers
// against the same registry.
func Detect(buf []byte, reg *signature.Registry) string {
	return New(reg).Detect(buf)
}
