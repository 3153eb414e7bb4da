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
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/ostafen/magicid/internal/match"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	// MinProbeSize is the smallest prefix read from every file.
	MinProbeSize = 16

	FileNotFound     = "File not found"
	PermissionDenied = "Permission denied"
)

type Result struct {
	Path   string
	Result string
}

type Options struct {
	Fs      afero.Fs
	Matcher *match.Matcher
	Workers int
	Logger  *slog.Logger
}

// ProbeSize returns how many leading bytes must be read so that every
// signature known to m can be evaluated.
func ProbeSize(m *match.Matcher) int {
	return max(MinProbeSize, m.MaxLen())
}

// Read returns at most n bytes from the start of the file at path.
func Read(fsys afero.Fs, path string, n int) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	m, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:m], nil
}

// Classify maps the I/O errors that are reported as a file result. It
// returns false for any other error.
func Classify(err error) (string, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound, true
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied, true
	}
	return "", false
}

// File probes a single path and returns its result string.
func File(fsys afero.Fs, m *match.Matcher, path string) (string, error) {
	buf, err := Read(fsys, path, ProbeSize(m))
	if err != nil {
		if res, ok := Classify(err); ok {
			return res, nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return m.Detect(buf), nil
}

// Run probes every path and returns one result per path, in input order.
// Missing and unreadable files are recorded as results; any other I/O error
// stops the run.
func Run(ctx context.Context, opts Options, paths []string) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := File(opts.Fs, opts.Matcher, path)
			if err != nil {
				logger.Error("probe failed", "path", path, "err", err)
				return err
			}

			logger.Debug("probed file", "path", path, "result", res)

			results[i] = Result{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
