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
package signature

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// InvalidFormatError reports a custom signature entry that is not of the form HEX:LABEL.
type InvalidFormatError struct {
	Entry  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid signature %q: %s (expected HEX:LABEL)", e.Entry, e.Reason)
}

// ParseEntry parses a single HEX:LABEL entry. The label is everything after
// the first colon and may itself contain colons.
func ParseEntry(s string) (Entry, error) {
	hexPart, label, found := strings.Cut(s, ":")
	if !found {
		return Entry{}, &InvalidFormatError{Entry: s, Reason: "missing ':' separator"}
	}

	if hexPart == "" {
		return Entry{}, &InvalidFormatError{Entry: s, Reason: "empty hex signature"}
	}

	if len(hexPart)%2 != 0 {
		return Entry{}, &InvalidFormatError{Entry: s, Reason: fmt.Sprintf("odd length hex %q", hexPart)}
	}

	sig, err := hex.DecodeString(hexPart)
	if err != nil {
		return Entry{}, &InvalidFormatError{Entry: s, Reason: fmt.Sprintf("invalid hex %q", hexPart)}
	}

	return Entry{Signature: sig, Label: label}, nil
}

// ParseAdditions parses every entry into a new registry. All malformed
// entries are reported in the returned error, each as an *InvalidFormatError.
func ParseAdditions(entries []string) (*Registry, error) {
	r := NewRegistry()

	var errs *multierror.Error
	for _, s := range entries {
		e, err := ParseEntry(s)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		r.Add(e.Signature, e.Label)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}
