// Command dfamin minimizes a deterministic finite automaton described by a transition table and
// prints the reduced original, the minimized automaton and its partition.
//
//	dfamin [-config dfa.yaml] [-output text|json] [-log-level warn] [-log-format text] [-metrics]
//
// Without -config the built-in example table is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	dfa "github.com/NimalKG/dfa-minimization-tool"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintln(os.Stderr, "dfamin:", err)
	os.Exit(2)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dfamin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile  = fs.String("config", "", "YAML file with the DFA table and settings")
		output      = fs.String("output", "", "Report format: text or json")
		logLevel    = fs.String("log-level", "", "Log level: debug, info, warn or error")
		logFormat   = fs.String("log-format", "", "Log format: text or json")
		showMetrics = fs.Bool("metrics", false, "Print run metrics in Prometheus text format to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cfg)
	reg := prometheus.NewRegistry()
	minimizer := dfa.NewMinimizer(
		dfa.WithLogger(logger),
		dfa.WithMetrics(dfa.NewMetrics(reg)),
		dfa.WithParseOptions(cfg.parseOptions()...),
	)

	report, err := minimizer.Process(&cfg.Table)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case "json":
		err = renderJSON(stdout, report)
	default:
		err = renderText(stdout, report)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if *showMetrics {
		return writeMetrics(stderr, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
