// perf/report.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/RISCfuture/SF50-TOLD-sub003/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// LimitingFactor says why a runway's maximum weight stops where it
// does.
type LimitingFactor int

const (
	// LimitChart: the charts run out (or the certified envelope does)
	// before anything else binds.
	LimitChart LimitingFactor = iota
	// LimitRunwayLength: a computed distance outgrows the declared
	// distance first.
	LimitRunwayLength
	// LimitClimbObstacle: the climb gradient falls below the
	// requirement first.
	LimitClimbObstacle
)

func (f LimitingFactor) String() string {
	return [...]string{"chart limit", "runway length", "climb/obstacle"}[f]
}

func (f LimitingFactor) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// RunwayInfo is the per-runway summary line of a report: the heaviest
// certified weight at which the operation still works on that runway,
// and what stops it going higher.
type RunwayInfo struct {
	Runway    string         `json:"runway"`
	MaxWeight float64        `json:"max_weight"`
	LimitedBy LimitingFactor `json:"limited_by"`
}

// A ReportRow holds every metric of the operation for one scenario on
// one runway.
type ReportRow struct {
	Scenario string             `json:"scenario"`
	Runway   string             `json:"runway"`
	Metrics  map[Metric]Outcome `json:"metrics"`
}

type Report struct {
	Operation     string        `json:"operation"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Conditions    Conditions    `json:"conditions"`
	Configuration Configuration `json:"configuration"`
	RunwayInfo    []RunwayInfo  `json:"runway_info"`
	Rows          []ReportRow   `json:"rows"`
}

type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseComputingRunwayInfo
	PhaseComputingScenarios
	PhaseDone
)

func (p Phase) String() string {
	return [...]string{"idle", "computing runway info", "computing scenarios", "done"}[p]
}

// An Operation is a phase of flight a report can be generated for. The
// report machinery is identical for takeoff and landing; operations
// supply only which metrics to tabulate and whether a given weight
// satisfies the operation's constraints on a runway.
type Operation interface {
	Name() string
	Metrics() []Metric
	// check reports whether the operation works at all under these
	// inputs, and if not, the factor that rules it out.
	check(m Model, cond Conditions, cfg Configuration, rwy AdjustedRunway) (bool, LimitingFactor)
}

type TakeoffOperation struct{}

func (TakeoffOperation) Name() string { return "takeoff" }

func (TakeoffOperation) Metrics() []Metric {
	return []Metric{TakeoffGroundRun, TakeoffDistance, TakeoffClimbGradient, TakeoffClimbRate}
}

func (TakeoffOperation) check(m Model, cond Conditions, cfg Configuration, rwy AdjustedRunway) (bool, LimitingFactor) {
	gr := m.Compute(TakeoffGroundRun, cond, cfg, rwy)
	td := m.Compute(TakeoffDistance, cond, cfg, rwy)
	grad := m.Compute(TakeoffClimbGradient, cond, cfg, rwy)
	if !usable(gr) || !usable(td) || !usable(grad) {
		return false, LimitChart
	}
	if gr.ExceedsLimit(rwy.TORA) || td.ExceedsLimit(rwy.TODA) {
		return false, LimitRunwayLength
	}
	if grad.BelowMinimum(rwy.RequiredClimbGradient) {
		return false, LimitClimbObstacle
	}
	return true, LimitChart
}

type LandingOperation struct{}

func (LandingOperation) Name() string { return "landing" }

func (LandingOperation) Metrics() []Metric {
	return []Metric{LandingGroundRun, LandingDistance, Vref, GoAroundClimbGradient}
}

func (LandingOperation) check(m Model, cond Conditions, cfg Configuration, rwy AdjustedRunway) (bool, LimitingFactor) {
	ld := m.Compute(LandingDistance, cond, cfg, rwy)
	ga := m.Compute(GoAroundClimbGradient, cond, cfg, rwy)
	if !usable(ld) || !usable(ga) {
		return false, LimitChart
	}
	if ld.ExceedsLimit(rwy.LDA) {
		return false, LimitRunwayLength
	}
	if ga.BelowMinimum(MinimumGoAroundClimbGradient) {
		return false, LimitClimbObstacle
	}
	return true, LimitChart
}

// usable reports whether an outcome can participate in a constraint
// check at all; NotAvailable counts as usable (the constraint is
// simply not checked) but offscale, invalid, and unauthorized do not.
func usable(o Outcome) bool {
	return o.IsValue() || o.Kind == OutcomeNotAvailable
}

// Request is everything a report needs: baseline weather and
// configuration, candidate runways with their NOTAMs (keyed by runway
// name), and any what-if scenarios, in presentation order.
type Request struct {
	Conditions    Conditions             `json:"conditions"`
	Configuration Configuration          `json:"configuration"`
	Runways       []RunwayInput          `json:"runways"`
	NOTAMs        map[string]*NOTAMInput `json:"notams,omitempty"`
	Scenarios     []Scenario             `json:"scenarios,omitempty"`
}

// Generator produces reports from a model. It is safe for use from
// multiple goroutines, one report at a time per Generator; Phase can be
// polled from another goroutine for progress.
type Generator struct {
	model    Model
	settings Settings
	lg       *log.Logger
	phase    atomic.Int32
}

func NewGenerator(model Model, settings Settings, lg *log.Logger) *Generator {
	return &Generator{model: model, settings: settings, lg: lg}
}

func (g *Generator) Phase() Phase {
	return Phase(g.phase.Load())
}

// Generate builds a complete report for the operation. Runways are
// computed in parallel but results are placed by index, so output order
// never depends on scheduling: runways sort by name, and rows group by
// scenario (baseline first, then the request's scenarios in order).
func (g *Generator) Generate(ctx context.Context, op Operation, req Request) (*Report, error) {
	runways := slices.Clone(req.Runways)
	slices.SortFunc(runways, func(a, b RunwayInput) int {
		return strings.Compare(a.Name, b.Name)
	})
	adjusted := make([]AdjustedRunway, len(runways))
	for i, rwy := range runways {
		adjusted[i] = AdjustRunway(rwy, req.NOTAMs[rwy.Name])
	}

	report := &Report{
		Operation:     op.Name(),
		GeneratedAt:   time.Now(),
		Conditions:    req.Conditions,
		Configuration: req.Configuration,
		RunwayInfo:    make([]RunwayInfo, len(runways)),
	}

	// Weight-limit search first. Probes during bisection revisit the
	// same weights, so they go through a memoizing model; the baseline
	// conditions are fixed for this whole phase, which keeps the memo
	// key small.
	g.phase.Store(int32(PhaseComputingRunwayInfo))
	memo := newMemoModel(g.model)

	eg, gctx := errgroup.WithContext(ctx)
	for i := range adjusted {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.RunwayInfo[i] = g.maxWeight(op, memo, req.Conditions, req.Configuration, adjusted[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.phase.Store(int32(PhaseIdle))
		return nil, err
	}

	g.phase.Store(int32(PhaseComputingScenarios))
	scenarios := append([]Scenario{BaselineScenario()}, req.Scenarios...)
	report.Rows = make([]ReportRow, len(scenarios)*len(adjusted))

	eg, gctx = errgroup.WithContext(ctx)
	for si := range scenarios {
		si := si
		eg.Go(func() error {
			for ri := range adjusted {
				if err := gctx.Err(); err != nil {
					return err
				}
				cond, cfg, rwy := scenarios[si].Apply(req.Conditions, req.Configuration, adjusted[ri])

				row := ReportRow{
					Scenario: scenarios[si].Name,
					Runway:   rwy.Name,
					Metrics:  make(map[Metric]Outcome),
				}
				for _, m := range op.Metrics() {
					row.Metrics[m] = g.model.Compute(m, cond, cfg, rwy)
				}
				report.Rows[si*len(adjusted)+ri] = row
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.phase.Store(int32(PhaseIdle))
		return nil, err
	}

	g.phase.Store(int32(PhaseDone))
	return report, nil
}

// maxWeight finds the heaviest weight in the certified envelope, on the
// search increment, at which the operation still checks out on this
// runway. The check is monotone in weight (heavier never helps), so a
// bisection over increment-aligned weights finds the boundary exactly.
func (g *Generator) maxWeight(op Operation, m Model, cond Conditions, cfg Configuration, rwy AdjustedRunway) RunwayInfo {
	info := RunwayInfo{Runway: rwy.Name}

	pred := func(weight float64) (bool, LimitingFactor) {
		c := cfg
		c.Weight = weight
		return op.check(m, cond, c, rwy)
	}

	if ok, _ := pred(MaximumCertifiedWeight); ok {
		// Nothing binds before the envelope does.
		info.MaxWeight = MaximumCertifiedWeight
		info.LimitedBy = LimitChart
		g.lg.Debugf("%s: max weight %v (envelope)", rwy.Name, info.MaxWeight)
		return info
	}
	if ok, factor := pred(MinimumCertifiedWeight); !ok {
		// Unworkable even at minimum weight; report the floor and the
		// factor that rules it out there.
		info.MaxWeight = MinimumCertifiedWeight
		info.LimitedBy = factor
		g.lg.Debugf("%s: unworkable at minimum weight (%s)", rwy.Name, factor)
		return info
	}

	// Invariant: ok at lo, not ok at hi, in increment index space.
	lo, hi := 0, (MaximumCertifiedWeight-MinimumCertifiedWeight)/WeightIncrement
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if ok, _ := pred(float64(MinimumCertifiedWeight + mid*WeightIncrement)); ok {
			lo = mid
		} else {
			hi = mid
		}
	}

	info.MaxWeight = float64(MinimumCertifiedWeight + lo*WeightIncrement)
	_, info.LimitedBy = pred(info.MaxWeight + WeightIncrement)
	g.lg.Debugf("%s: max weight %v (%s)", rwy.Name, info.MaxWeight, info.LimitedBy)
	return info
}

// memoModel caches Compute results during the weight search, where the
// same (metric, weight) probes recur across bisections. Conditions are
// constant over a search phase so they stay out of the key.
type memoModel struct {
	model Model
	cache *lru.Cache[probeKey, Outcome]
}

type probeKey struct {
	metric Metric
	weight float64
	flaps  FlapSetting
	runway string
}

func newMemoModel(m Model) *memoModel {
	cache, err := lru.New[probeKey, Outcome](4096)
	if err != nil {
		panic(err) // only fails for non-positive size
	}
	return &memoModel{model: m, cache: cache}
}

func (m *memoModel) Compute(metric Metric, cond Conditions, cfg Configuration, rwy AdjustedRunway) Outcome {
	key := probeKey{metric: metric, weight: cfg.Weight, flaps: cfg.Flaps, runway: rwy.Name}
	if o, ok := m.cache.Get(key); ok {
		return o
	}
	o := m.model.Compute(metric, cond, cfg, rwy)
	m.cache.Add(key, o)
	return o
}
