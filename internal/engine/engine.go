package engine

import (
	"context"
	"time"

	"jobmatch/internal/errors"
	"jobmatch/internal/observability"
	"jobmatch/internal/skills"
	"jobmatch/internal/types"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Delegate is an external semantic model that can take over the engine's
// sub-tasks. Any error from a delegate call routes the request to the
// deterministic path; the caller never sees the difference.
type Delegate interface {
	StructureResume(ctx context.Context, text string) (types.NormalizedResume, error)
	StructureJob(ctx context.Context, posting types.JobPosting) (types.NormalizedJob, error)
	ScoreMatch(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.MatchResult, error)
	Recommend(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.RecommendationReport, error)
}

// Engine is the public entry point: it coordinates the AI delegate and
// the deterministic analyzers so every operation always returns a valid
// record. The engine is stateless apart from the shared skill map and is
// safe for concurrent use.
type Engine struct {
	skillMap *skills.SkillMap
	resumes  *ResumeAnalyzer
	jobs     *JobAnalyzer
	scorer   *Scorer
	delegate Delegate
	logger   *errors.Logger
	metrics  *observability.Metrics
}

// NewEngine wires the engine. delegate, logger, and metrics may be nil;
// a nil delegate means every request takes the deterministic path.
func NewEngine(skillMap *skills.SkillMap, delegate Delegate, logger *errors.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		skillMap: skillMap,
		resumes:  NewResumeAnalyzer(skillMap, logger),
		jobs:     NewJobAnalyzer(skillMap, logger),
		scorer:   NewScorer(skillMap, logger),
		delegate: delegate,
		logger:   logger,
		metrics:  metrics,
	}
}

// SkillMap exposes the shared skill map for runtime alias registration
func (e *Engine) SkillMap() *skills.SkillMap {
	return e.skillMap
}

// AnalyzeResume structures resume text into a NormalizedResume
func (e *Engine) AnalyzeResume(ctx context.Context, text string) types.NormalizedResume {
	if e.delegate != nil {
		resume, err := e.delegate.StructureResume(ctx, text)
		if err == nil {
			e.count(ctx, e.resumesAnalyzed(), "ai")
			return e.canonicalizeResume(resume)
		}
		e.fallback(ctx, "analyze_resume", err)
	}

	result := e.resumes.Analyze(text)
	e.count(ctx, e.resumesAnalyzed(), "deterministic")
	return result
}

// AnalyzeResumeBatch structures many resumes, isolating per-item failures
func (e *Engine) AnalyzeResumeBatch(ctx context.Context, texts []string) []types.NormalizedResume {
	results := make([]types.NormalizedResume, 0, len(texts))
	for _, text := range texts {
		if ctx.Err() != nil {
			break
		}
		results = append(results, e.AnalyzeResume(ctx, text))
	}
	return results
}

// AnalyzeJob structures a job posting into a NormalizedJob
func (e *Engine) AnalyzeJob(ctx context.Context, posting types.JobPosting) types.NormalizedJob {
	if e.delegate != nil {
		job, err := e.delegate.StructureJob(ctx, posting)
		if err == nil {
			e.count(ctx, e.jobsAnalyzed(), "ai")
			return e.canonicalizeJob(job, posting)
		}
		e.fallback(ctx, "analyze_job", err)
	}

	result := e.jobs.Analyze(posting)
	e.count(ctx, e.jobsAnalyzed(), "deterministic")
	return result
}

// AnalyzeJobBatch structures many postings. The deterministic analyzer is
// used for every item: batch work runs unattended and should not burn
// delegate quota or stall on retries.
func (e *Engine) AnalyzeJobBatch(ctx context.Context, postings []types.JobPosting) []types.NormalizedJob {
	results := make([]types.NormalizedJob, 0, len(postings))
	for _, posting := range postings {
		if ctx.Err() != nil {
			break
		}
		results = append(results, e.jobs.analyzeIsolated(posting))
		e.count(ctx, e.jobsAnalyzed(), "deterministic")
	}
	return results
}

// CalculateMatch scores a resume against a job. The result is always
// complete: delegate failures fall back to the deterministic scorer, and
// delegate-reported scores are normalized to the 0-100 scale.
func (e *Engine) CalculateMatch(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) types.MatchResult {
	if e.delegate != nil {
		match, err := e.delegate.ScoreMatch(ctx, resume, job)
		if err == nil {
			e.count(ctx, e.matchesComputed(), "ai")
			return sanitizeMatch(match)
		}
		e.fallback(ctx, "calculate_match", err)
	}

	result := e.scorer.Score(resume, job)
	e.count(ctx, e.matchesComputed(), "deterministic")
	return result
}

// GenerateRecommendations builds a strengths/gaps/recommendations report
// for a resume/job pair.
func (e *Engine) GenerateRecommendations(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) types.RecommendationReport {
	if e.delegate != nil {
		report, err := e.delegate.Recommend(ctx, resume, job)
		if err == nil {
			return report
		}
		e.fallback(ctx, "recommend", err)
	}

	match := e.scorer.Score(resume, job)
	return buildReport(match, job)
}

// canonicalizeResume re-normalizes delegate-returned skills so the
// canonical-names-only invariant holds regardless of which path ran.
func (e *Engine) canonicalizeResume(resume types.NormalizedResume) types.NormalizedResume {
	technical, soft := e.skillMap.NormalizeAll(resume.Skills.All())
	resume.Skills = types.SkillSet{Technical: technical, Soft: soft}
	return resume
}

func (e *Engine) canonicalizeJob(job types.NormalizedJob, posting types.JobPosting) types.NormalizedJob {
	technical, soft := e.skillMap.NormalizeAll(job.Skills.All())
	job.Skills = types.SkillSet{Technical: technical, Soft: soft}
	if job.Title == "" {
		job.Title = posting.Title
	}
	if job.Company == "" {
		job.Company = posting.Company
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Category == "" {
		job.Category = CategorizeJob(job, posting.Description)
	}
	return job
}

// sanitizeMatch normalizes a delegate-produced match: sub-scores reported
// on a 0-1 scale are rescaled, everything is clamped to [0,100], and a
// missing timestamp is filled in.
func sanitizeMatch(match types.MatchResult) types.MatchResult {
	match.ScoreOverall = ClampScore(rescale(match.ScoreOverall))
	match.ScoreDetails.TechnicalSkills = ClampScore(rescale(match.ScoreDetails.TechnicalSkills))
	match.ScoreDetails.SoftSkills = ClampScore(rescale(match.ScoreDetails.SoftSkills))
	match.ScoreDetails.Experience = ClampScore(rescale(match.ScoreDetails.Experience))
	match.ScoreDetails.Education = ClampScore(rescale(match.ScoreDetails.Education))
	match.ScoreDetails.JobTitle = ClampScore(rescale(match.ScoreDetails.JobTitle))
	if match.MatchingSkills == nil {
		match.MatchingSkills = []string{}
	}
	if match.MissingSkills == nil {
		match.MissingSkills = []string{}
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}
	return match
}

// rescale maps scores reported on a 0-1 scale onto 0-100
func rescale(v float64) float64 {
	if v > 0 && v <= 1.0 {
		return v * 100
	}
	return v
}

func (e *Engine) fallback(ctx context.Context, operation string, err error) {
	if e.logger != nil {
		e.logger.LogError(err, "Delegate failed, using deterministic path", "operation", operation)
	}
	if e.metrics != nil && e.metrics.FallbackCount != nil {
		e.metrics.FallbackCount.Add(ctx, 1,
			metric.WithAttributes(attribute.String("operation", operation)))
	}
}

func (e *Engine) resumesAnalyzed() metric.Int64Counter {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.ResumesAnalyzed
}

func (e *Engine) jobsAnalyzed() metric.Int64Counter {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.JobsAnalyzed
}

func (e *Engine) matchesComputed() metric.Int64Counter {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.MatchesComputed
}

func (e *Engine) count(ctx context.Context, counter metric.Int64Counter, path string) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("path", path)))
}
