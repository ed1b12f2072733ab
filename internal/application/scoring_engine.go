package application

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/eligibility"
	"github.com/archscore/archscore/internal/domain/explain"
	"github.com/archscore/archscore/internal/domain/intent"
	"github.com/archscore/archscore/internal/domain/questions"
	"github.com/archscore/archscore/internal/domain/scoring"
	"go.uber.org/zap"
)

// NoEligibleWarning is added to a result when every catalog entry was excluded.
const NoEligibleWarning = "No eligible architectures found after filtering"

// ScoringEngine runs the recommendation pipeline:
// normalize → derive intent → questions → filter → score → explain.
// The loaded catalog is immutable and shared; each call owns its context,
// intent and warnings, so concurrent calls are safe.
type ScoringEngine struct {
	cfg      domain.ScoringConfig
	scorer   *scoring.Scorer
	catalogs domain.CatalogLoader
	contexts domain.ContextReader
	observer domain.RunObserver
	logger   *zap.Logger

	catalog atomic.Pointer[domain.ArchitectureCatalog]
}

// Option configures a ScoringEngine.
type Option func(*ScoringEngine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *ScoringEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver reports every scoring call to o.
func WithObserver(o domain.RunObserver) Option {
	return func(e *ScoringEngine) { e.observer = o }
}

func NewScoringEngine(
	cfg domain.ScoringConfig,
	catalogs domain.CatalogLoader,
	contexts domain.ContextReader,
	opts ...Option,
) *ScoringEngine {
	cfg = cfg.WithDefaults()
	e := &ScoringEngine{
		cfg:      cfg,
		scorer:   scoring.NewScorer(scoring.WeightsFromConfig(cfg)),
		catalogs: catalogs,
		contexts: contexts,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadCatalog reads and checks a catalog, then makes it the engine's catalog.
// On any error the previously loaded catalog (if any) stays in place.
func (e *ScoringEngine) LoadCatalog(path string) (*domain.ArchitectureCatalog, error) {
	cat, err := e.catalogs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if err := domain.CheckCatalogVersion(cat.Version, e.cfg.MinCatalogVersion); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	e.catalog.Store(cat)
	e.logger.Info("catalog loaded",
		zap.String("path", path),
		zap.String("version", cat.Version),
		zap.Int("architectures", len(cat.Architectures)),
	)
	return cat, nil
}

// Config returns the effective scoring configuration.
func (e *ScoringEngine) Config() domain.ScoringConfig { return e.cfg }

// Catalog returns the loaded catalog or a NotLoadedError.
func (e *ScoringEngine) Catalog() (*domain.ArchitectureCatalog, error) {
	cat := e.catalog.Load()
	if cat == nil {
		return nil, &domain.NotLoadedError{}
	}
	return cat, nil
}

// Score reads the context at contextPath and scores it. limit <= 0 uses the
// configured max_recommendations.
func (e *ScoringEngine) Score(contextPath string, answers map[string]string, limit int) (*domain.ScoringResult, error) {
	start := time.Now()
	if _, err := e.Catalog(); err != nil {
		e.observe(domain.OutcomeError, start, nil)
		return nil, err
	}
	ctx, err := e.contexts.Read(contextPath)
	if err != nil {
		e.observe(domain.OutcomeError, start, nil)
		return nil, fmt.Errorf("reading context: %w", err)
	}
	return e.run(start, ctx, answers, limit)
}

// ScoreContext scores an already-normalized context. ctx is not modified.
func (e *ScoringEngine) ScoreContext(ctx *domain.ApplicationContext, answers map[string]string, limit int) (*domain.ScoringResult, error) {
	return e.run(time.Now(), ctx, answers, limit)
}

// Questions returns the clarification questions for the context at path.
func (e *ScoringEngine) Questions(contextPath string) ([]domain.ClarificationQuestion, error) {
	ctx, err := e.contexts.Read(contextPath)
	if err != nil {
		return nil, fmt.Errorf("reading context: %w", err)
	}
	in := e.deriveIntent(ctx)
	return questions.Generate(ctx, in, e.cfg.MaxQuestions), nil
}

func (e *ScoringEngine) run(start time.Time, source *domain.ApplicationContext, answers map[string]string, limit int) (*domain.ScoringResult, error) {
	cat, err := e.Catalog()
	if err != nil {
		e.observe(domain.OutcomeError, start, nil)
		return nil, err
	}
	if source == nil || source.Overview.ApplicationName == "" {
		e.observe(domain.OutcomeError, start, nil)
		return nil, &domain.SchemaError{Field: "app_overview.application", Msg: "application name is required"}
	}

	// 1. Own a copy of the context and fold in this call's answers
	ctx := source.Clone()
	if len(answers) > 0 && ctx.UserAnswers == nil {
		ctx.UserAnswers = make(map[string]string, len(answers))
	}
	for k, v := range answers {
		ctx.UserAnswers[k] = v
	}
	var warnings []string
	for _, k := range questions.UnknownAnswerKeys(ctx.UserAnswers) {
		warnings = append(warnings, fmt.Sprintf("Ignored unknown answer %q", k))
	}
	for _, k := range questions.InvalidAnswers(ctx.UserAnswers) {
		warnings = append(warnings, fmt.Sprintf("Answer %q is not a listed option; kept the derived value", k))
	}

	// 2. Derive intent, then questions for what is still uncertain
	in := e.deriveIntent(ctx)
	qs := questions.Generate(ctx, in, e.cfg.MaxQuestions)
	e.logger.Debug("intent derived",
		zap.String("application", ctx.Overview.ApplicationName),
		zap.Int("unknown_dimensions", len(in.UnknownDimensions())),
		zap.Int("questions", len(qs)),
	)

	// 3. Hard constraints
	eligible, excluded := eligibility.Filter(cat.Architectures, ctx, in, eligibility.Options{MinQuality: e.cfg.MinCatalogQuality})
	if len(eligible) == 0 {
		warnings = append(warnings, NoEligibleWarning)
	}
	e.logger.Debug("eligibility filtered",
		zap.String("application", ctx.Overview.ApplicationName),
		zap.Int("eligible", len(eligible)),
		zap.Int("excluded", len(excluded)),
	)

	// 4. Score every eligible entry; truncation happens after ranking
	recs := e.scorer.Score(eligible, ctx, in)

	if limit <= 0 {
		limit = e.cfg.MaxRecommendations
	}
	res := explain.Build(explain.Input{
		Context:         ctx,
		Catalog:         cat,
		Intent:          in,
		Questions:       qs,
		Recommendations: recs,
		Excluded:        excluded,
		EligibleCount:   len(eligible),
		Warnings:        warnings,
		Thresholds:      e.cfg.ConfidenceThresholds,
		Limit:           limit,
	})

	e.observe(domain.OutcomeSuccess, start, res)
	e.logger.Info("scoring finished",
		zap.String("application", res.ApplicationName),
		zap.Int("eligible", res.EligibleCount),
		zap.Int("excluded", len(res.Excluded)),
		zap.Int("top_score", res.TopScore()),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (e *ScoringEngine) deriveIntent(ctx *domain.ApplicationContext) domain.ArchitecturalIntent {
	return questions.ApplyAnswers(ctx, intent.Derive(ctx), ctx.UserAnswers)
}

func (e *ScoringEngine) observe(outcome string, start time.Time, res *domain.ScoringResult) {
	if e.observer != nil {
		e.observer.ObserveRun(outcome, time.Since(start), res)
	}
}
