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
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/ostafen/magicid/internal/logger"
	"github.com/ostafen/magicid/internal/match"
	"github.com/ostafen/magicid/internal/probe"
	"github.com/ostafen/magicid/internal/report"
	"github.com/ostafen/magicid/internal/signature"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var ErrNoFiles = errors.New("at least one file path must be provided")

type Options struct {
	JSON      bool
	List      bool
	Additions []string
	Workers   int
	NoColor   bool
	LogLevel  slog.Level
}

func RunDetect(cmd *cobra.Command, args []string, fsys afero.Fs) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	additions, err := signature.ParseAdditions(opts.Additions)
	if err != nil {
		return err
	}
	registry := signature.Merge(signature.Builtin(), additions)

	if opts.List {
		cmd.SilenceUsage = true
		return report.WriteList(cmd.OutOrStdout(), registry)
	}

	if len(args) == 0 {
		return ErrNoFiles
	}
	cmd.SilenceUsage = true

	log := logger.New(cmd.ErrOrStderr(), opts.LogLevel)
	log.Info("probing files",
		"files", len(args),
		"signatures", registry.Len(),
		"workers", opts.Workers,
	)

	results, err := probe.Run(cmd.Context(), probe.Options{
		Fs:      fsys,
		Matcher: match.New(registry),
		Workers: opts.Workers,
		Logger:  log,
	}, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.JSON {
		return report.WriteJSON(out, results)
	}
	colored := !opts.NoColor && !color.NoColor && report.IsTerminal(out)
	return report.WriteText(out, results, colored)
}

func parseOptions(cmd *cobra.Command) (Options, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	list, _ := cmd.Flags().GetBool("list")
	additions, _ := cmd.Flags().GetStringArray("add")
	noColor, _ := cmd.Flags().GetBool("no-color")
	logLevel, _ := cmd.Flags().GetString("log-level")

	workers, _ := cmd.Flags().GetInt("workers")
	if workers < 1 {
		return Options{}, fmt.Errorf("workers must be greater than 0, got %d", workers)
	}

	return Options{
		JSON:      jsonOutput,
		List:      list,
		Additions: additions,
		Workers:   workers,
		NoColor:   noColor,
		LogLevel:  logger.ParseLevel(logLevel),
	}, nil
}
