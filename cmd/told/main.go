// cmd/told/main.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// told reads a performance request as JSON, runs the takeoff and/or
// landing report generator against the embedded SF50 dataset, and
// writes the report(s) as JSON.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/RISCfuture/SF50-TOLD-sub003/log"
	"github.com/RISCfuture/SF50-TOLD-sub003/perf"
)

var (
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	inputFile    = flag.String("input", "-", "request JSON file, - for stdin")
	operation    = flag.String("operation", "both", "report to generate: takeoff, landing, or both")
	modelName    = flag.String("model", "tabular", "performance model: tabular or regression")
	safetyFactor = flag.Float64("safety", 1, "safety factor applied to computed distances")
	format       = flag.String("format", "json", "output format: json or text")
	units        = flag.String("units", "ft", "distance units for text output: ft or m")
	listTables   = flag.Bool("listtables", false, "list the embedded performance tables and exit")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	tables, err := perf.LoadTables(lg)
	if err != nil {
		lg.Errorf("loading performance tables: %v", err)
		os.Exit(1)
	}

	if *listTables {
		for _, name := range tables.Names() {
			tab := tables.Table(name)
			fmt.Printf("%s: %d axes, %d cells\n", name, len(tab.Axes), len(tab.Values))
		}
		os.Exit(0)
	}

	settings := perf.Settings{SafetyFactor: *safetyFactor}
	if *units == "m" {
		settings.DistanceUnit = perf.UnitMeters
	}
	var model perf.Model
	switch *modelName {
	case "tabular":
		model = perf.NewTabularModel(tables, settings, lg)
	case "regression":
		model = perf.NewRegressionModel(tables, settings, lg)
	default:
		lg.Errorf("%s: unknown model", *modelName)
		os.Exit(1)
	}

	req, err := readRequest(*inputFile)
	if err != nil {
		lg.Errorf("reading request: %v", err)
		os.Exit(1)
	}

	var ops []perf.Operation
	switch *operation {
	case "takeoff":
		ops = []perf.Operation{perf.TakeoffOperation{}}
	case "landing":
		ops = []perf.Operation{perf.LandingOperation{}}
	case "both":
		ops = []perf.Operation{perf.TakeoffOperation{}, perf.LandingOperation{}}
	default:
		lg.Errorf("%s: unknown operation", *operation)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := perf.NewGenerator(model, settings, lg)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, op := range ops {
		report, err := gen.Generate(ctx, op, *req)
		if err != nil {
			lg.Errorf("generating %s report: %v", op.Name(), err)
			os.Exit(1)
		}

		if *format == "text" {
			printReport(report, op, settings)
			continue
		}
		if err := enc.Encode(report); err != nil {
			lg.Errorf("writing %s report: %v", op.Name(), err)
			os.Exit(1)
		}
	}
}

func printReport(report *perf.Report, op perf.Operation, settings perf.Settings) {
	fmt.Printf("%s report\n", report.Operation)
	for _, info := range report.RunwayInfo {
		fmt.Printf("  runway %s: max weight %.0f lb (%s)\n", info.Runway, info.MaxWeight, info.LimitedBy)
	}
	for _, row := range report.Rows {
		fmt.Printf("  %s / runway %s:\n", row.Scenario, row.Runway)
		for _, m := range op.Metrics() {
			o := row.Metrics[m]
			switch m {
			case perf.TakeoffGroundRun, perf.TakeoffDistance, perf.LandingGroundRun, perf.LandingDistance:
				fmt.Printf("    %s: %s\n", m, settings.FormatDistance(o))
			default:
				fmt.Printf("    %s: %s\n", m, o)
			}
		}
	}
}

func readRequest(path string) (*perf.Request, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req perf.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, err
	}
	if len(req.Runways) == 0 {
		return nil, fmt.Errorf("request names no runways")
	}
	if req.Conditions.SeaLevelPressure == 0 {
		req.Conditions.SeaLevelPressure = perf.StandardSeaLevelPressure
	}
	return &req, nil
}
