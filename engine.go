package riskengine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vulnguard/riskengine/catalog"
	"github.com/vulnguard/riskengine/compliance"
	"github.com/vulnguard/riskengine/finding"
	"github.com/vulnguard/riskengine/risk"
)

// Engine is the primary entry point for risk prioritization and compliance
// gap analysis. An Engine is stateless between calls and safe for concurrent
// use by multiple goroutines.
type Engine struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	parallelism int
	scorer      *risk.Scorer
}

// New creates an Engine configured with the given options.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = noop.NewTracerProvider().Tracer("riskengine")
	}
	if cfg.parallelism < 1 {
		cfg.parallelism = runtime.NumCPU()
	}

	return &Engine{
		logger:      cfg.logger,
		tracer:      cfg.tracer,
		parallelism: cfg.parallelism,
		scorer: risk.NewScorer(risk.Options{
			Workers: cfg.parallelism,
			Logger:  cfg.logger,
		}),
	}
}

// ScoreFindings scores a batch of findings against their resolved assets and
// returns the results in canonical priority order with 1-based ranks.
//
// Findings that fail validation or reference an unresolvable asset are
// reported in the result's Failures and do not abort the batch.
func (e *Engine) ScoreFindings(ctx context.Context, findings []finding.Finding, resolver risk.AssetResolver) (risk.BatchResult, error) {
	const op = "Engine.ScoreFindings"

	ctx, span := e.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.Int("findings.count", len(findings)),
	))
	defer span.End()

	if resolver == nil {
		return risk.BatchResult{}, newError(op, KindValidation, ErrNilResolver)
	}

	result, err := e.scorer.ScoreBatch(ctx, findings, resolver)
	if err != nil {
		return risk.BatchResult{}, newError(op, KindAnalysis, err)
	}

	span.SetAttributes(
		attribute.Int("findings.scored", len(result.Scores)),
		attribute.Int("findings.failed", len(result.Failures)),
	)
	return result, nil
}

// AnalyzeGaps runs a compliance gap analysis for one builtin framework.
// The frameworkID must be one of the catalog framework identifiers
// (e.g. catalog.FrameworkNIST80053); unknown identifiers return an error
// matching ErrFrameworkNotFound.
func (e *Engine) AnalyzeGaps(ctx context.Context, frameworkID string, findings []finding.Finding) (*compliance.GapAnalysisResult, error) {
	const op = "Engine.AnalyzeGaps"

	mapper, err := catalog.NewMapper(frameworkID)
	if err != nil {
		return nil, newError(op, KindNotFound, fmt.Errorf("framework %q: %w", frameworkID, ErrFrameworkNotFound))
	}
	return e.analyzeWith(ctx, op, mapper, findings)
}

// AnalyzeGapsWith runs a compliance gap analysis with a caller-supplied
// mapper, typically built from a catalog file via catalog.Load.
func (e *Engine) AnalyzeGapsWith(ctx context.Context, mapper *compliance.Mapper, findings []finding.Finding) (*compliance.GapAnalysisResult, error) {
	const op = "Engine.AnalyzeGapsWith"

	if mapper == nil {
		return nil, newError(op, KindValidation, fmt.Errorf("mapper is required"))
	}
	return e.analyzeWith(ctx, op, mapper, findings)
}

func (e *Engine) analyzeWith(ctx context.Context, op string, mapper *compliance.Mapper, findings []finding.Finding) (*compliance.GapAnalysisResult, error) {
	_, span := e.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("framework.id", mapper.Framework().ID),
		attribute.Int("findings.count", len(findings)),
	))
	defer span.End()

	result, err := mapper.Analyze(findings)
	if err != nil {
		return nil, newError(op, KindAnalysis, err)
	}

	span.SetAttributes(attribute.Int("compliance.score", result.ComplianceScore))
	return result, nil
}

// FrameworkFailure records a framework whose gap analysis could not run.
type FrameworkFailure struct {
	// FrameworkID is the identifier of the framework that failed.
	FrameworkID string `json:"framework_id"`

	// Err is the underlying error. It is carried for errors.Is checks and
	// not serialized.
	Err error `json:"-"`

	// Reason is the human-readable form of Err.
	Reason string `json:"reason"`
}

// MultiFrameworkResult is the outcome of analyzing findings against several
// frameworks at once. Reports are ordered by framework ID ascending.
type MultiFrameworkResult struct {
	// Reports holds one gap-analysis result per framework that analyzed
	// successfully.
	Reports []*compliance.GapAnalysisResult `json:"reports"`

	// Failures lists the frameworks that could not be analyzed.
	Failures []FrameworkFailure `json:"failures,omitempty"`
}

// AnalyzeFrameworks runs gap analyses for several builtin frameworks
// concurrently. If frameworkIDs is empty, every builtin framework is
// analyzed. Duplicate identifiers are analyzed once.
//
// Frameworks are analyzed independently: an unknown identifier is reported
// in Failures without aborting the rest. Output order is canonical
// (framework ID ascending) regardless of parallelism.
func (e *Engine) AnalyzeFrameworks(ctx context.Context, frameworkIDs []string, findings []finding.Finding) (MultiFrameworkResult, error) {
	const op = "Engine.AnalyzeFrameworks"

	ids := frameworkIDs
	if len(ids) == 0 {
		ids = catalog.FrameworkIDs()
	}
	ids = dedupeSorted(ids)

	ctx, span := e.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.Int("frameworks.count", len(ids)),
		attribute.Int("findings.count", len(findings)),
	))
	defer span.End()

	type outcome struct {
		report *compliance.GapAnalysisResult
		err    error
	}
	outcomes := make([]outcome, len(ids))

	workers := e.parallelism
	if workers > len(ids) {
		workers = len(ids)
	}
	if workers < 1 {
		workers = 1
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				report, err := e.AnalyzeGaps(ctx, ids[i], findings)
				outcomes[i] = outcome{report: report, err: err}
			}
		}()
	}

feed:
	for i := range ids {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return MultiFrameworkResult{}, newError(op, KindAnalysis, err)
	}

	var result MultiFrameworkResult
	for i := range outcomes {
		if outcomes[i].err != nil {
			result.Failures = append(result.Failures, FrameworkFailure{
				FrameworkID: ids[i],
				Err:         outcomes[i].err,
				Reason:      outcomes[i].err.Error(),
			})
			continue
		}
		result.Reports = append(result.Reports, outcomes[i].report)
	}

	if len(result.Failures) > 0 {
		e.logger.Debug("multi-framework analysis completed with failures",
			"analyzed", len(result.Reports),
			"failed", len(result.Failures),
		)
	}
	return result, nil
}

// dedupeSorted returns the unique elements of ids in ascending order.
func dedupeSorted(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)

	n := 0
	for i := range out {
		if i == 0 || out[i] != out[i-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
