// Package app wires the parser, merger and formatter into one run over an
// input file.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/henderiw/zipcondense/internal/selftest"
	"github.com/henderiw/zipcondense/pkg/format"
	"github.com/henderiw/zipcondense/pkg/interval"
	"github.com/henderiw/zipcondense/pkg/merger"
	"github.com/henderiw/zipcondense/pkg/parser"
)

type App struct {
	out    io.Writer
	config *Config
}

func NewApp(out io.Writer, config *Config) *App {
	return &App{out: out, config: config}
}

// Run executes the self test and/or condenses the input file. The input
// file is processed even when the self test fails; both errors are
// returned. The logger is taken from ctx.
func (a *App) Run(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)

	var testErr error
	if a.config.SelfTest {
		testErr = selftest.Run(ctx, a.out, a.config.TempDir)
	}
	if a.config.InputPath == "" {
		return testErr
	}
	log.V(1).Info("filename=" + a.config.InputPath)
	rr, err := Condense(ctx, a.config.InputPath)
	if err != nil {
		return errors.Join(testErr, err)
	}
	if err := format.Write(a.out, rr); err != nil {
		return errors.Join(testErr, err)
	}
	return testErr
}

// Condense reads the ranges in path and returns their minimal sorted
// cover. Lines that do not parse are logged and skipped; only failing to
// read the file is an error.
func Condense(ctx context.Context, path string) ([]interval.Interval, error) {
	log := logr.FromContextOrDiscard(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	rr, rejects, err := parser.New(parser.WithLogger(log.WithName("parser"))).ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file %s: %w", path, err)
	}
	if rejects != nil {
		log.Info("ignored invalid lines", "file", path, "count", len(rejects.Errors()))
	}
	return merger.Merge(log.WithName("merger"), rr), nil
}
