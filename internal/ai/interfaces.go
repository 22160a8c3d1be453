package ai

import (
	"context"

	"jobmatch/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	StructureResume(ctx context.Context, text string) (types.NormalizedResume, *TokenUsage, error)
	StructureJob(ctx context.Context, posting types.JobPosting) (types.NormalizedJob, *TokenUsage, error)
	ScoreMatch(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.MatchResult, *TokenUsage, error)
	Recommend(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.RecommendationReport, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
