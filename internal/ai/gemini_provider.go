package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"jobmatch/internal/config"
	jmerrors "jobmatch/internal/errors"
	"jobmatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	limiter        *rate.Limiter
	logger         *jmerrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific
// operation. limiter may be nil; a non-nil limiter is shared across
// providers so the total request rate toward the API stays bounded.
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, limiter *rate.Limiter, logger *jmerrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, jmerrors.NewAIError(jmerrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breaker with operation-specific configuration
	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		limiter:        limiter,
		logger:         logger,
	}, nil
}

// NewRateLimiter builds the shared outbound limiter from configuration.
// Returns nil when rate limiting is disabled.
func NewRateLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if !cfg.Enabled {
		return nil
	}
	perSecond := rate.Limit(float64(cfg.RequestsPerMin) / 60.0)
	return rate.NewLimiter(perSecond, cfg.BurstCapacity)
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	// Create a timeout context for the model check
	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	// Get model information from Gemini API with circuit breaker
	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		// Log the error for debugging
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	// Model is available, populate info
	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	// Log successful check
	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

const modelCheckTimeout = 10 * time.Second

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Log retry attempt
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			// Use crypto/rand for secure random jitter
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	// Log final failure
	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// classifyGenerationError maps a provider failure onto the error taxonomy,
// keeping throttling distinguishable from ordinary delegate failures.
func classifyGenerationError(operationName string, err error) *jmerrors.AppError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return jmerrors.NewAIError(jmerrors.ErrCodeAIRateLimited, "Provider rate limited "+operationName, err)
	}
	return jmerrors.NewAIError(jmerrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true // Retry on timeouts
		}
		// Consider other network errors retryable (e.g., connection refused)
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// executeAIOperation is a generic helper to run AI operations with common rate limiting, tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("jobmatch.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	// Set base attributes
	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	// Honor the shared outbound rate limit before doing any work
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.Bool("success", false))
			return output, nil, jmerrors.NewAIError(jmerrors.ErrCodeAIServiceFailed, "Rate limit wait canceled for "+operationName, err)
		}
	}

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, classifyGenerationError(operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, jmerrors.NewAIError(jmerrors.ErrCodeAIParseFailed, "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// StructureResume implements AIProvider interface for resume structuring
func (g *GeminiProvider) StructureResume(ctx context.Context, text string) (types.NormalizedResume, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForOperation("analyzeResume", text)
	cfg := g.buildResumeSchema()

	output, tokenUsage, err := executeAIOperation[types.NormalizedResume](
		g,
		ctx,
		"structure_resume",
		userPrompt,
		systemPrompt,
		cfg,
		attribute.Int("input.resume_length", len(text)),
	)

	if err != nil {
		return types.NormalizedResume{}, nil, err
	}

	// Add operation-specific success metrics to the span created by the helper
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.skill_count", len(output.Skills.All())),
			attribute.Int("output.experience_count", len(output.Experience)),
		)
	}

	return output, tokenUsage, nil
}

// StructureJob implements AIProvider interface for job posting structuring
func (g *GeminiProvider) StructureJob(ctx context.Context, posting types.JobPosting) (types.NormalizedJob, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForOperation("analyzeJob", renderPosting(posting))
	cfg := g.buildJobSchema()

	output, tokenUsage, err := executeAIOperation[types.NormalizedJob](
		g,
		ctx,
		"structure_job",
		userPrompt,
		systemPrompt,
		cfg,
		attribute.Int("input.job_length", len(posting.Description)),
	)

	if err != nil {
		return types.NormalizedJob{}, nil, err
	}

	// Add operation-specific success metrics to the span created by the helper
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.skill_count", len(output.Skills.All())),
			attribute.Int("output.requirement_count", len(output.Requirements)),
		)
	}

	return output, tokenUsage, nil
}

// ScoreMatch implements AIProvider interface for compatibility scoring
func (g *GeminiProvider) ScoreMatch(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.MatchResult, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForPair("match", resume, job)
	cfg := g.buildMatchSchema()

	output, tokenUsage, err := executeAIOperation[types.MatchResult](
		g,
		ctx,
		"score_match",
		userPrompt,
		systemPrompt,
		cfg,
		attribute.Int("input.resume_skills", len(resume.Skills.All())),
		attribute.Int("input.job_skills", len(job.Skills.All())),
	)

	if err != nil {
		return types.MatchResult{}, nil, err
	}

	// Add operation-specific success metrics to the span created by the helper
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Float64("match.score_overall", output.ScoreOverall),
			attribute.Int("match.missing_skills", len(output.MissingSkills)),
		)
	}

	return output, tokenUsage, nil
}

// Recommend implements AIProvider interface for fit reports
func (g *GeminiProvider) Recommend(ctx context.Context, resume types.NormalizedResume, job types.NormalizedJob) (types.RecommendationReport, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForPair("recommend", resume, job)
	cfg := g.buildRecommendSchema()

	output, tokenUsage, err := executeAIOperation[types.RecommendationReport](
		g,
		ctx,
		"recommend",
		userPrompt,
		systemPrompt,
		cfg,
		attribute.Int("input.resume_skills", len(resume.Skills.All())),
		attribute.Int("input.job_skills", len(job.Skills.All())),
	)

	if err != nil {
		return types.RecommendationReport{}, nil, err
	}

	// Add operation-specific success metrics to the span created by the helper
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("report.strengths", len(output.Strengths)),
			attribute.Int("report.gaps", len(output.Gaps)),
		)
	}

	return output, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	// Probably needed in streaming mode
	return nil
}

// renderPosting flattens a posting into the prompt text. Explicit fields
// ride along with the description so the model sees everything.
func renderPosting(posting types.JobPosting) string {
	out := ""
	if posting.Title != "" {
		out += "Cargo: " + posting.Title + "\n"
	}
	if posting.Company != "" {
		out += "Empresa: " + posting.Company + "\n"
	}
	if posting.Location != "" {
		out += "Local: " + posting.Location + "\n"
	}
	if posting.JobType != "" {
		out += "Tipo: " + posting.JobType + "\n"
	}
	if posting.ExperienceLevel != "" {
		out += "Experiência: " + posting.ExperienceLevel + "\n"
	}
	if posting.SalaryRange != "" {
		out += "Salário: " + posting.SalaryRange + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out + posting.Description
}

// getPromptsForOperation returns system and user prompts for single-document operations
func (g *GeminiProvider) getPromptsForOperation(promptType, document string) (string, string) {
	systemPrompt := g.getSystemPrompt(promptType)
	userPrompt := g.getUserPrompt(promptType)

	return systemPrompt, fmt.Sprintf(userPrompt, document)
}

// getPromptsForPair returns system and user prompts for resume/job pair operations
func (g *GeminiProvider) getPromptsForPair(promptType string, resume types.NormalizedResume, job types.NormalizedJob) (string, string) {
	systemPrompt := g.getSystemPrompt(promptType)
	userPrompt := g.getUserPrompt(promptType)

	resumeJSON, _ := json.MarshalIndent(resume, "", "  ")
	jobJSON, _ := json.MarshalIndent(job, "", "  ")

	return systemPrompt, fmt.Sprintf(userPrompt, string(resumeJSON), string(jobJSON))
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "analyzeResume":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.AnalyzeResume,
			configSystemPrompts.AnalyzeResume,
			DefaultSystemPrompts.AnalyzeResume,
		)
	case "analyzeJob":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.AnalyzeJob,
			configSystemPrompts.AnalyzeJob,
			DefaultSystemPrompts.AnalyzeJob,
		)
	case "match":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.Match,
			configSystemPrompts.Match,
			DefaultSystemPrompts.Match,
		)
	case "recommend":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.Recommend,
			configSystemPrompts.Recommend,
			DefaultSystemPrompts.Recommend,
		)
	default:
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "analyzeResume":
		return resolvePrompt(
			loadedPrompts.UserPrompts.AnalyzeResume,
			configUserPrompts.AnalyzeResume,
			DefaultUserPrompts.AnalyzeResume,
		)
	case "analyzeJob":
		return resolvePrompt(
			loadedPrompts.UserPrompts.AnalyzeJob,
			configUserPrompts.AnalyzeJob,
			DefaultUserPrompts.AnalyzeJob,
		)
	case "match":
		return resolvePrompt(
			loadedPrompts.UserPrompts.Match,
			configUserPrompts.Match,
			DefaultUserPrompts.Match,
		)
	case "recommend":
		return resolvePrompt(
			loadedPrompts.UserPrompts.Recommend,
			configUserPrompts.Recommend,
			DefaultUserPrompts.Recommend,
		)
	default:
		return ""
	}
}

// buildResumeSchema creates the schema for resume structuring requests
func (g *GeminiProvider) buildResumeSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"personal_info": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":  {Type: genai.TypeString},
						"email": {Type: genai.TypeString},
						"phone": {Type: genai.TypeString},
						"urls": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
				},
				"skills":    skillSetSchema(),
				"experience": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"title":       {Type: genai.TypeString},
							"company":     {Type: genai.TypeString},
							"start_date":  {Type: genai.TypeString},
							"end_date":    {Type: genai.TypeString},
							"description": {Type: genai.TypeString},
						},
					},
				},
				"education": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"degree":         {Type: genai.TypeString},
							"institution":    {Type: genai.TypeString},
							"field_of_study": {Type: genai.TypeString},
							"start_date":     {Type: genai.TypeString},
							"end_date":       {Type: genai.TypeString},
						},
					},
				},
				"languages": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"language":    {Type: genai.TypeString},
							"proficiency": {Type: genai.TypeString},
						},
						Required: []string{"language"},
					},
				},
				"certifications": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":   {Type: genai.TypeString},
							"issuer": {Type: genai.TypeString},
							"date":   {Type: genai.TypeString},
						},
						Required: []string{"name"},
					},
				},
			},
			Required: []string{"personal_info", "skills", "experience", "education"},
		},
	}

	g.applyTemperature(cfg)
	return cfg
}

// buildJobSchema creates the schema for job structuring requests
func (g *GeminiProvider) buildJobSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":            {Type: genai.TypeString},
				"company":          {Type: genai.TypeString},
				"location":         {Type: genai.TypeString},
				"job_type":         {Type: genai.TypeString},
				"experience_level": {Type: genai.TypeString},
				"salary_range":     {Type: genai.TypeString},
				"category":         {Type: genai.TypeString},
				"skills":           skillSetSchema(),
				"requirements": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"benefits": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"title", "skills", "requirements"},
		},
	}

	g.applyTemperature(cfg)
	return cfg
}

// buildMatchSchema creates the schema for match scoring requests
func (g *GeminiProvider) buildMatchSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score_overall": {Type: genai.TypeNumber},
				"score_details": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"technical_skills": {Type: genai.TypeNumber},
						"soft_skills":      {Type: genai.TypeNumber},
						"experience":       {Type: genai.TypeNumber},
						"education":        {Type: genai.TypeNumber},
						"job_title":        {Type: genai.TypeNumber},
					},
					Required: []string{"technical_skills", "soft_skills", "experience", "education", "job_title"},
				},
				"matching_skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"missing_skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"recommendations": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"score_overall", "score_details", "matching_skills", "missing_skills", "recommendations"},
		},
	}

	g.applyTemperature(cfg)
	return cfg
}

// buildRecommendSchema creates the schema for fit report requests
func (g *GeminiProvider) buildRecommendSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strengths": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"gaps": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"recommendations": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"strengths", "gaps", "recommendations"},
		},
	}

	g.applyTemperature(cfg)
	return cfg
}

// skillSetSchema is shared between the resume and job schemas
func skillSetSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"technical": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"soft": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"technical", "soft"},
	}
}

// applyTemperature applies the configured temperature if set
func (g *GeminiProvider) applyTemperature(cfg *genai.GenerateContentConfig) {
	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// AIOperationResult holds the result of an AI operation including token usage
type AIOperationResult struct {
	Error      error
	TokenUsage *TokenUsage
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// getPrompts returns the appropriate prompts for the operation, prioritizing loaded content over config
func (g *GeminiProvider) getPrompts(operationType string) (config.OperationLoadedPrompts, *config.PromptConfig) {
	// Get loaded prompts (returns a copy)
	loadedPrompts := config.GetPromptsForOperation(operationType)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
