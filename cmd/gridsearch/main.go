// Command gridsearch reads a run file, solves the board with the named
// strategy and writes the result file.
//
//	gridsearch -in input.txt -out output.txt
//
// Exit status is 1 for an invalid run file or board, 2 for I/O failures.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/report"
)

const (
	exitConfig = 1
	exitIO     = 2
)

var log = logrus.New()

func main() {
	in := flag.String("in", "input.txt", "run file (.txt, .yaml or .yml)")
	out := flag.String("out", "output.txt", "result file; - for stdout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	os.Exit(run(*in, *out))
}

func run(in, out string) int {
	cfg, err := config.Load(in)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			log.WithError(err).Error("read run file")
			return exitIO
		}
		log.WithError(err).WithField("file", in).Error("invalid run file")
		return exitConfig
	}
	g, err := cfg.Grid()
	if err != nil {
		log.WithError(err).WithField("file", in).Error("invalid board")
		return exitConfig
	}

	sc := cfg.Solver()
	if cfg.WithOpen {
		// open-list lines are part of the requested output
		log.SetLevel(logrus.DebugLevel)
	}
	sc.Logger = log

	fields := logrus.Fields{
		"algorithm": cfg.Algorithm.Name(),
		"order":     cfg.Order.String(),
		"rows":      g.Rows,
		"cols":      g.Cols,
	}
	log.WithFields(fields).Debug("solving")

	start := time.Now()
	res, err := cfg.Algorithm.Solve(g, sc)
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).WithFields(fields).Error("search failed")
		return exitConfig
	}
	log.WithFields(fields).WithFields(logrus.Fields{
		"found":     res.Found,
		"generated": res.Generated,
		"elapsed":   elapsed,
	}).Info("search finished")

	if err := writeResult(out, res, elapsed, cfg.WithTime); err != nil {
		log.WithError(err).WithField("file", out).Error("write result file")
		return exitIO
	}

	return 0
}

// writeResult writes res to path, or to stdout when path is "-". The file is
// closed before returning so a failed flush is reported.
func writeResult(path string, res *core.Result, elapsed time.Duration, withTime bool) error {
	if path == "-" {
		return report.Write(os.Stdout, res, elapsed, withTime)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, res, elapsed, withTime); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
