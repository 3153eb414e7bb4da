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
	"maps"
	"slices"
)

// Entry associates a magic byte sequence with the label of the format it identifies.
type Entry struct {
	Signature []byte
	Label     string
}

// Registry maps signatures to labels. Keys are compared by exact byte content
// and a later write for the same key replaces the label in place.
type Registry struct {
	labels map[string]string
	// keys preserves the order in which signatures were first registered.
	keys []string
}

func NewRegistry() *Registry {
	return &Registry{
		labels: make(map[string]string),
	}
}

// Add registers sig with the given label, overriding any previous label for
// the same signature. Empty signatures are ignored since they would match
// every buffer.
func (r *Registry) Add(sig []byte, label string) {
	if len(sig) == 0 {
		return
	}

	key := string(sig)
	if _, found := r.labels[key]; !found {
		r.keys = append(r.keys, key)
	}
	r.labels[key] = label
}

// Label returns the label registered for exactly sig.
func (r *Registry) Label(sig []byte) (string, bool) {
	label, found := r.labels[string(sig)]
	return label, found
}

func (r *Registry) Len() int {
	return len(r.keys)
}

// MaxLen returns the length of the longest registered signature.
func (r *Registry) MaxLen() int {
	n := 0
	for _, key := range r.keys {
		n = max(n, len(key))
	}
	return n
}

// Entries returns a copy of the registry content in registration order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.keys))
	for i, key := range r.keys {
		entries[i] = Entry{
			Signature: []byte(key),
			Label:     r.labels[key],
		}
	}
	return entries
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{
		labels: maps.Clone(r.labels),
		keys:   slices.Clone(r.keys),
	}
}

// Merge returns a new registry holding base with additions layered on top.
// On a collision the label from additions wins. Neither input is modified.
func Merge(base, additions *Registry) *Registry {
	merged := base.Clone()
	for _, key := range additions.keys {
		merged.Add([]byte(key), additions.labels[key])
	}
	return merged
}
