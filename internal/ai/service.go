package ai

import (
	"context"
	"fmt"

	"jobmatch/internal/config"
	"jobmatch/internal/errors"
	"jobmatch/internal/observability"
	"jobmatch/internal/types"

	"golang.org/x/time/rate"
)

// Service handles AI operations for a single operation type
type Service struct {
	Provider AIProvider // Exported for access from CLI status reporting
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, limiter *rate.Limiter, logger *errors.Logger) (*Service, error) {
	var provider AIProvider
	var err error

	// Debug logging for service initialization
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, limiter, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// GetModelInfo returns information about the AI model for status reporting
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases the underlying provider
func (s *Service) Close() error {
	return s.Provider.Close()
}

// Delegate bundles one AI service per engine operation behind the
// engine's delegate contract. All four providers share one outbound
// rate limiter so per-operation configuration cannot multiply the
// request rate toward the API.
type Delegate struct {
	analyzeResume *Service
	analyzeJob    *Service
	match         *Service
	recommend     *Service
	obs           *observability.ObservabilityManager
	logger        *errors.Logger
}

// NewDelegate builds the delegate from the resolved per-operation
// configurations. Returns nil when no API key is configured: the engine
// treats a nil delegate as "deterministic only".
func NewDelegate(cfg *config.Config, obs *observability.ObservabilityManager, logger *errors.Logger) (*Delegate, error) {
	if cfg.AI.APIKey == "" {
		logger.Info("No AI API key configured, all operations use the deterministic path")
		return nil, nil
	}

	limiter := NewRateLimiter(cfg.AI.RateLimit)

	analyzeResumeCfg := cfg.GetAnalyzeResumeConfig()
	analyzeResume, err := NewService(&analyzeResumeCfg, "analyzeResume", limiter, logger)
	if err != nil {
		return nil, err
	}
	analyzeJobCfg := cfg.GetAnalyzeJobConfig()
	analyzeJob, err := NewService(&analyzeJobCfg, "analyzeJob", limiter, logger)
	if err != nil {
		return nil, err
	}
	matchCfg := cfg.GetMatchConfig()
	match, err := NewService(&matchCfg, "match", limiter, logger)
	if err != nil {
		return nil, err
	}
	recommendCfg := cfg.GetRecommendConfig()
	recommend, err := NewService(&recommendCfg, "recommend", limiter, logger)
	if err != nil {
		return nil, err
	}

	return &Delegate{
		analyzeResume: analyzeResume,
		analyzeJob:    analyzeJob,
		match:         match,
		recommend:     recommend,
		obs:           obs,
		logger:        logger,
	}, nil
}

// StructureResume asks the AI provider to structure raw resume text
func (d *Delegate) StructureResume(ctx context.Context, text string) (types.NormalizedResume, error) {
	var resume types.NormalizedResume
	err := d.tracked(ctx, "analyze_resume", func(ctx context.Context) (*TokenUsage, error) {
		var usage *TokenUsage
		var err error
		resume, usage, err = d.analyzeResume.Provider.StructureResume(ctx, text)
		return usage, err
	})
	return resume, err
}

// StructureJob asks the AI provider to structure a job posting
func (d *Delegate) StructureJob(ctx context.Context, posting types.JobPosting) (types.NormalizedJob, error) {
	var job types.NormalizedJob
	err := d.tracked(ctx, "analyze_job", func(ctx context.Context) (*TokenUsage, error) {
		var usage *TokenUsage
		var err error
		job, usage, err = d.analyzeJob.Provider.StructureJob(ctx, posting)
		return usage, err
	})
	return job, err
}

// ScoreMatch asks the AI provider to score a resume/job pair
func (d *Delegate) ScoreMatch(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.MatchResult, error) {
	var match types.MatchResult
	err := d.tracked(ctx, "calculate_match", func(ctx context.Context) (*TokenUsage, error) {
		var usage *TokenUsage
		var err error
		match, usage, err = d.match.Provider.ScoreMatch(ctx, resume, job)
		return usage, err
	})
	return match, err
}

// Recommend asks the AI provider for a fit report
func (d *Delegate) Recommend(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.RecommendationReport, error) {
	var report types.RecommendationReport
	err := d.tracked(ctx, "recommend", func(ctx context.Context) (*TokenUsage, error) {
		var usage *TokenUsage
		var err error
		report, usage, err = d.recommend.Provider.Recommend(ctx, resume, job)
		return usage, err
	})
	return report, err
}

// tracked runs fn under the AI operation metrics when observability is
// configured, passing token usage through to the meter.
func (d *Delegate) tracked(ctx context.Context, operation string, fn func(context.Context) (*TokenUsage, error)) error {
	if d.obs == nil || d.obs.GetMetrics() == nil {
		_, err := fn(ctx)
		return err
	}

	return d.obs.GetMetrics().TrackAIOperationWithTokens(ctx, operation, func(ctx context.Context) *observability.AIOperationResult {
		usage, err := fn(ctx)
		result := &observability.AIOperationResult{Error: err}
		if usage != nil {
			result.TokenUsage = &observability.TokenUsage{
				InputTokens:  usage.InputTokens,
				OutputTokens: usage.OutputTokens,
				TotalTokens:  usage.TotalTokens,
			}
		}
		return result
	}, d.obs)
}

// Services returns the per-operation services keyed by operation name,
// for status reporting.
func (d *Delegate) Services() map[string]*Service {
	return map[string]*Service{
		"analyzeResume": d.analyzeResume,
		"analyzeJob":    d.analyzeJob,
		"match":         d.match,
		"recommend":     d.recommend,
	}
}

// Close releases all providers, reporting the first error encountered
func (d *Delegate) Close() error {
	var first error
	for name, svc := range d.Services() {
		if err := svc.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s provider: %w", name, err)
		}
	}
	return first
}
