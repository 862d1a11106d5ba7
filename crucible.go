package crucible

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/profile"
	"github.com/katalvlaran/crucible/telemetry"
)

// ErrNilGraph indicates Evaluate was called with a nil graph.
var ErrNilGraph = errors.New("crucible: graph is nil")

// Answer is the outcome of one profile.
type Answer struct {
	Profile  profile.Profile
	Found    bool
	Cost     int64            // dijkstra.Unreachable when !Found
	Path     []gridgraph.Cell // set only with WithReturnPath and Found
	Rendered string           // the grid with Path drawn as arrows, set with Path
	Settled  int
	Pushed   int
	Stale    int
	Duration time.Duration
}

// Report collects the answers of one evaluation, in profile order.
type Report struct {
	RunID    string
	Height   int
	Width    int
	Answers  []Answer
	Duration time.Duration
}

// Answer returns the answer for the named profile.
func (r *Report) Answer(name string) (Answer, bool) {
	for _, a := range r.Answers {
		if a.Profile.Name == name {
			return a, true
		}
	}

	return Answer{}, false
}

// Solve parses text as a digit grid and evaluates every profile from the
// top-left cell to the bottom-right cell.
// Grid errors (gridgraph.ErrParse, gridgraph.ErrNonRectangular,
// gridgraph.ErrEmptyGrid) are returned wrapped; no search runs.
func Solve(ctx context.Context, text string, opts ...Option) (*Report, error) {
	g, err := gridgraph.LoadGrid(text)
	if err != nil {
		return nil, fmt.Errorf("crucible: load grid: %w", err)
	}
	adj, err := gridgraph.BuildAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("crucible: build adjacency: %w", err)
	}

	return Evaluate(ctx, adj, opts...)
}

// Evaluate runs one search per profile over a prebuilt adjacency, from the
// top-left cell to the bottom-right cell. The graph is only read, so callers
// may share it between concurrent evaluations.
// Profiles are validated before any search starts. ctx carries spans and is
// checked between searches; a single search is never interrupted.
func Evaluate(ctx context.Context, g *gridgraph.Graph, opts ...Option) (rep *Report, err error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	done := telemetry.TimedOperation()
	logger := telemetry.EnrichLogger(cfg.Logger, cfg.RunID)
	ctx, span := cfg.Spans.StartEvaluationSpan(ctx, cfg.RunID)
	defer func() {
		elapsed := done()
		cfg.Metrics.RecordEvaluation(ctx, err == nil, elapsed)
		if err != nil {
			telemetry.LogEvaluationError(logger, err, telemetry.Milliseconds(elapsed))
		} else {
			rep.Duration = elapsed
			telemetry.LogEvaluationComplete(logger, telemetry.Milliseconds(elapsed), len(rep.Answers))
		}
		cfg.Spans.EndSpanWithError(span, err)
	}()

	if err := profile.ValidateAll(cfg.Profiles); err != nil {
		return nil, fmt.Errorf("crucible: %w", err)
	}

	h, w := g.Grid().Dimensions()
	telemetry.LogEvaluationStart(logger, h, w, len(cfg.Profiles))
	report := &Report{RunID: cfg.RunID, Height: h, Width: w, Answers: make([]Answer, 0, len(cfg.Profiles))}
	goal := gridgraph.Cell{Row: h - 1, Col: w - 1}

	for _, p := range cfg.Profiles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("crucible: %w", err)
		}
		a, err := runProfile(ctx, &cfg, g, p, goal)
		if err != nil {
			return nil, err
		}
		telemetry.LogSearchResult(logger, outcome(a), telemetry.Milliseconds(a.Duration))
		report.Answers = append(report.Answers, a)
	}

	return report, nil
}

// runProfile runs one search inside its own span and records its metrics.
func runProfile(ctx context.Context, cfg *Options, g *gridgraph.Graph, p profile.Profile, goal gridgraph.Cell) (a Answer, err error) {
	ctx, span := cfg.Spans.StartSearchSpan(ctx, p.Name, p.MinRun, p.MaxRun)
	defer func() { cfg.Spans.EndSpanWithError(span, err) }()

	opts := append(p.Options(), dijkstra.From(gridgraph.Cell{}), dijkstra.To(goal))
	if cfg.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	done := telemetry.TimedOperation()
	res, err := dijkstra.Search(g, opts...)
	if err != nil {
		return Answer{}, fmt.Errorf("crucible: profile %s: %w", p.Name, err)
	}
	a = Answer{
		Profile:  p,
		Found:    res.Found,
		Cost:     res.Cost,
		Settled:  res.Settled,
		Pushed:   res.Pushed,
		Stale:    res.Stale,
		Duration: done(),
	}
	if res.Found && cfg.ReturnPath {
		if a.Path, err = res.Path(); err != nil {
			return Answer{}, fmt.Errorf("crucible: profile %s: %w", p.Name, err)
		}
		if a.Rendered, err = gridgraph.Render(g.Grid(), a.Path); err != nil {
			return Answer{}, fmt.Errorf("crucible: profile %s: %w", p.Name, err)
		}
	}

	cfg.Metrics.RecordSearch(ctx, outcome(a), a.Duration)
	if res.Found {
		cfg.Spans.AddSpanEvent(ctx, "goal.accepted",
			attribute.Int64("cost", res.Cost),
			attribute.String("goal.state", res.Goal.String()),
		)
	}

	return a, nil
}

func outcome(a Answer) telemetry.SearchOutcome {
	return telemetry.SearchOutcome{
		Profile: a.Profile.Name,
		Found:   a.Found,
		Cost:    a.Cost,
		Settled: a.Settled,
		Pushed:  a.Pushed,
		Stale:   a.Stale,
	}
}
