// SPDX-License-Identifier: MIT

// Command isometry applies a YAML transform chain to the points listed in it.
//
//	isometry -config chain.yaml [-invert] [-workers N] [-log-level info]
//
// The composed isometry is printed first, then one transformed point per line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/isometry/chain"
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

type cliOptions struct {
	config   string
	invert   bool
	workers  int
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var o cliOptions
	fs := flag.NewFlagSet("isometry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: isometry -config FILE [-invert] [-workers N] [-log-level LEVEL]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.config, "config", "", "YAML chain document (required)")
	fs.BoolVar(&o.invert, "invert", false, "apply the inverse chain")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "goroutines used to transform points")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}
	if o.config == "" || fs.NArg() > 0 || o.workers < 1 {
		fs.Usage()
		return o, errUsage
	}

	return o, nil
}

// run executes one invocation and writes results to stdout.
func run(ctx context.Context, o cliOptions, stdout io.Writer, logger *zap.Logger) error {
	cfg, err := chain.LoadFile(o.config)
	if err != nil {
		return err
	}
	p, err := cfg.Build(chain.WithLogger(logger), chain.WithWorkers(o.workers))
	if err != nil {
		return fmt.Errorf("build %s: %w", o.config, err)
	}
	if o.invert {
		if p, err = p.Inverse(); err != nil {
			return fmt.Errorf("invert %s: %w", o.config, err)
		}
	}

	points, err := cfg.PointVectors()
	if err != nil {
		return err
	}
	out, err := p.TransformAll(ctx, points)
	if err != nil {
		return err
	}

	logger.Info("chain applied",
		zap.String("chain", p.Name()),
		zap.Int("steps", p.Len()),
		zap.Int("points", len(out)),
		zap.Bool("inverted", o.invert),
	)

	fmt.Fprintln(stdout, p.Isometry())
	for _, v := range out {
		fmt.Fprintln(stdout, v.Text(9))
	}

	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(o.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, os.Stdout, logger); err != nil {
		logger.Error("isometry failed", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
