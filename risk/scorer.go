package risk

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vulnguard/riskengine/finding"
)

// AssetResolver supplies read-only asset records for scoring. Resolution is
// expected to be an in-memory lookup over a pre-resolved snapshot; the
// scorer never performs I/O.
type AssetResolver interface {
	// ResolveAsset returns the asset for the given identifier, or false if
	// no such asset is known.
	ResolveAsset(assetID string) (finding.Asset, bool)
}

// AssetMap is an AssetResolver backed by a plain map keyed by asset ID.
type AssetMap map[string]finding.Asset

// ResolveAsset implements AssetResolver.
func (m AssetMap) ResolveAsset(assetID string) (finding.Asset, bool) {
	asset, ok := m[assetID]
	return asset, ok
}

// RiskScore is the scoring output for a single finding.
type RiskScore struct {
	// FindingID identifies the scored finding.
	FindingID string `json:"finding_id"`

	// Score is the composite risk score, clamped to [0, 1].
	Score float64 `json:"risk_score"`

	// Tier is the priority tier derived from the score.
	Tier PriorityTier `json:"priority_tier"`

	// Rank is the 1-based position in the ranked batch output.
	// Zero when the score was produced outside a batch.
	Rank int `json:"priority_rank"`

	// Factors records the weighted contribution of each scoring factor.
	Factors FactorBreakdown `json:"factor_breakdown"`
}

// Failure reports a finding that could not be scored within a batch.
type Failure struct {
	// FindingID identifies the finding that failed. May be empty when the
	// finding carried no identifier.
	FindingID string `json:"finding_id"`

	// Err is the per-finding error: an *UnresolvedAssetError or a
	// *MalformedFindingError.
	Err error `json:"-"`

	// Reason is the human-readable form of Err, for serialized diagnostics.
	Reason string `json:"reason"`
}

// BatchResult is the outcome of scoring a batch of findings. Scores are
// sorted into the canonical priority order and ranked 1..n; Failures
// preserve the input order of the findings that could not be scored.
type BatchResult struct {
	// Scores holds the successfully scored findings, ranked.
	Scores []RiskScore `json:"scores"`

	// Failures lists the findings excluded from the ranking, with reasons.
	Failures []Failure `json:"failures,omitempty"`
}

// Options configures a Scorer.
type Options struct {
	// Workers is the number of goroutines used for batch scoring.
	// Values below 2 select sequential scoring. Parallel scoring produces
	// the same canonical output as sequential scoring.
	Workers int

	// Logger is the structured logger for batch diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Scorer computes composite risk scores for findings. A Scorer is stateless
// aside from its options; scoring the same inputs twice yields bit-identical
// results.
type Scorer struct {
	workers int
	logger  *slog.Logger
}

// NewScorer creates a scorer with the given options.
func NewScorer(opts Options) *Scorer {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{workers: workers, logger: logger}
}

// Score computes the risk score for a single finding on its resolved asset.
// Returns a *MalformedFindingError if the finding fails validation, or a
// wrapped asset validation error if the asset record is unusable.
func (s *Scorer) Score(f finding.Finding, asset finding.Asset) (RiskScore, error) {
	if err := f.Validate(); err != nil {
		return RiskScore{}, &MalformedFindingError{FindingID: f.ID, Err: err}
	}
	if err := asset.Validate(); err != nil {
		return RiskScore{}, fmt.Errorf("asset %s for finding %s: %w", asset.ID, f.ID, err)
	}

	factors := breakdownFor(&f, &asset)
	score := clamp01(factors.Total())

	return RiskScore{
		FindingID: f.ID,
		Score:     score,
		Tier:      TierForScore(score),
		Factors:   factors,
	}, nil
}

// ScoreBatch scores every finding in the batch, resolving assets through
// the supplied resolver, and returns the scores in canonical priority order
// with 1-based ranks assigned.
//
// Findings whose asset cannot be resolved, or which fail validation, are
// excluded from the ranking and reported in Failures; the rest of the batch
// still scores. A nil resolver or a cancelled context aborts the call with
// an empty result; a cancelled batch never reports partial scores.
func (s *Scorer) ScoreBatch(ctx context.Context, findings []finding.Finding, resolver AssetResolver) (BatchResult, error) {
	if resolver == nil {
		return BatchResult{}, fmt.Errorf("asset resolver is required")
	}

	outcomes := make([]outcome, len(findings))
	if s.workers > 1 && len(findings) > 1 {
		s.scoreParallel(ctx, findings, resolver, outcomes)
	} else {
		for i := range findings {
			outcomes[i] = s.scoreOne(&findings[i], resolver)
		}
	}

	// Cancellation leaves unfed outcome slots behind; they must not be
	// mistaken for scores of zero.
	if err := ctx.Err(); err != nil {
		return BatchResult{}, fmt.Errorf("batch scoring interrupted: %w", err)
	}

	var result BatchResult
	for i := range outcomes {
		if outcomes[i].err != nil {
			result.Failures = append(result.Failures, Failure{
				FindingID: findings[i].ID,
				Err:       outcomes[i].err,
				Reason:    outcomes[i].err.Error(),
			})
			continue
		}
		result.Scores = append(result.Scores, outcomes[i].score)
	}

	rank(result.Scores, findings)

	if len(result.Failures) > 0 {
		s.logger.Debug("batch scoring completed with failures",
			"scored", len(result.Scores),
			"failed", len(result.Failures),
		)
	}
	return result, nil
}

// outcome is the per-finding result of batch scoring before ranking.
type outcome struct {
	score RiskScore
	err   error
}

func (s *Scorer) scoreOne(f *finding.Finding, resolver AssetResolver) outcome {
	if err := f.Validate(); err != nil {
		return outcome{err: &MalformedFindingError{FindingID: f.ID, Err: err}}
	}
	asset, ok := resolver.ResolveAsset(f.AssetID)
	if !ok {
		return outcome{err: &UnresolvedAssetError{FindingID: f.ID, AssetID: f.AssetID}}
	}
	score, err := s.Score(*f, asset)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{score: score}
}

// scoreParallel fans finding indexes out to worker goroutines. Each index
// writes only its own outcome slot, so no locking is needed, and the final
// sort makes the output independent of scheduling.
func (s *Scorer) scoreParallel(ctx context.Context, findings []finding.Finding, resolver AssetResolver, outcomes []outcome) {
	indexes := make(chan int)
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(findings) {
		workers = len(findings)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = s.scoreOne(&findings[i], resolver)
			}
		}()
	}

feed:
	for i := range findings {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()
}

// rank sorts scores into the canonical total order and assigns 1-based
// ranks. Ties on the score break by declared severity, then CVE count, then
// lexicographic finding ID, so identical inputs always produce identical
// orderings.
func rank(scores []RiskScore, findings []finding.Finding) {
	byID := make(map[string]*finding.Finding, len(findings))
	for i := range findings {
		byID[findings[i].ID] = &findings[i]
	}

	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		fa, fb := byID[a.FindingID], byID[b.FindingID]
		if cmp := finding.CompareSeverity(fa.Severity, fb.Severity); cmp != 0 {
			return cmp > 0
		}
		if len(fa.CVEIDs) != len(fb.CVEIDs) {
			return len(fa.CVEIDs) > len(fb.CVEIDs)
		}
		return a.FindingID < b.FindingID
	})

	for i := range scores {
		scores[i].Rank = i + 1
	}
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
