package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Rate limit defaults (toward the provider)
	v.SetDefault("ai.rateLimit.enabled", true)
	v.SetDefault("ai.rateLimit.requestsPerMin", 60)
	v.SetDefault("ai.rateLimit.burstCapacity", 10)

	// AI Configuration - Resume analysis operation defaults
	v.SetDefault("ai.analyzeResume.provider", "gemini")
	v.SetDefault("ai.analyzeResume.model", "")
	v.SetDefault("ai.analyzeResume.timeout", 75*time.Second) // Resume texts can be long
	v.SetDefault("ai.analyzeResume.apiKey", "")
	v.SetDefault("ai.analyzeResume.maxRetries", 2)
	v.SetDefault("ai.analyzeResume.temperature", 0.1) // Very low temperature for factual extraction
	v.SetDefault("ai.analyzeResume.useSystemPrompts", true)

	// AI Configuration - Job analysis operation defaults
	v.SetDefault("ai.analyzeJob.provider", "gemini")
	v.SetDefault("ai.analyzeJob.model", "")
	v.SetDefault("ai.analyzeJob.timeout", 60*time.Second) // Standard timeout
	v.SetDefault("ai.analyzeJob.apiKey", "")
	v.SetDefault("ai.analyzeJob.maxRetries", 2)
	v.SetDefault("ai.analyzeJob.temperature", 0.1)
	v.SetDefault("ai.analyzeJob.useSystemPrompts", true)

	// AI Configuration - Match scoring operation defaults
	v.SetDefault("ai.match.provider", "gemini")
	v.SetDefault("ai.match.model", "")
	v.SetDefault("ai.match.timeout", 90*time.Second) // Scoring reads both documents
	v.SetDefault("ai.match.apiKey", "")
	v.SetDefault("ai.match.maxRetries", 2)
	v.SetDefault("ai.match.temperature", 0.2) // Low temperature for consistent scoring
	v.SetDefault("ai.match.useSystemPrompts", true)

	// AI Configuration - Recommendation operation defaults
	v.SetDefault("ai.recommend.provider", "gemini")
	v.SetDefault("ai.recommend.model", "")
	v.SetDefault("ai.recommend.timeout", 90*time.Second)
	v.SetDefault("ai.recommend.apiKey", "")
	v.SetDefault("ai.recommend.maxRetries", 2)
	v.SetDefault("ai.recommend.temperature", 0.3) // Slightly higher for varied advice
	v.SetDefault("ai.recommend.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.analyzeResume.circuitBreaker.enabled", true)
	v.SetDefault("ai.analyzeResume.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.analyzeResume.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.analyzeResume.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.analyzeResume.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.analyzeResume.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.analyzeJob.circuitBreaker.enabled", true)
	v.SetDefault("ai.analyzeJob.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.analyzeJob.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.analyzeJob.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.analyzeJob.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.analyzeJob.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.match.circuitBreaker.enabled", true)
	v.SetDefault("ai.match.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.match.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.match.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.match.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.match.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.recommend.circuitBreaker.enabled", true)
	v.SetDefault("ai.recommend.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.recommend.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.recommend.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.recommend.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.recommend.circuitBreaker.failureThreshold", 0.6)

	// Engine Configuration
	v.SetDefault("engine.skillMapFile", "")
	v.SetDefault("engine.watchSkillMap", false)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "jobmatch")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
