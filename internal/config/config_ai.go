package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetAnalyzeResumeConfig returns the AI configuration for resume analysis with fallback to global config
func (c *Config) GetAnalyzeResumeConfig() OperationAIConfig {
	config := c.AI.AnalyzeResume

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply operation-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AnalyzeResume == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResume = c.AI.CustomPrompts.SystemPrompts.AnalyzeResume
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResume == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResume = c.AI.CustomPrompts.UserPrompts.AnalyzeResume
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.SystemPrompts.AnalyzeResumeFile
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.UserPrompts.AnalyzeResumeFile
	}

	return config
}

// GetAnalyzeJobConfig returns the AI configuration for job analysis with fallback to global config
func (c *Config) GetAnalyzeJobConfig() OperationAIConfig {
	config := c.AI.AnalyzeJob

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply operation-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AnalyzeJob == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeJob = c.AI.CustomPrompts.SystemPrompts.AnalyzeJob
	}
	if config.CustomPrompts.UserPrompts.AnalyzeJob == "" {
		config.CustomPrompts.UserPrompts.AnalyzeJob = c.AI.CustomPrompts.UserPrompts.AnalyzeJob
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AnalyzeJobFile == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeJobFile = c.AI.CustomPrompts.SystemPrompts.AnalyzeJobFile
	}
	if config.CustomPrompts.UserPrompts.AnalyzeJobFile == "" {
		config.CustomPrompts.UserPrompts.AnalyzeJobFile = c.AI.CustomPrompts.UserPrompts.AnalyzeJobFile
	}

	return config
}

// GetMatchConfig returns the AI configuration for match scoring with fallback to global config
func (c *Config) GetMatchConfig() OperationAIConfig {
	config := c.AI.Match

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply operation-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Match == "" {
		config.CustomPrompts.SystemPrompts.Match = c.AI.CustomPrompts.SystemPrompts.Match
	}
	if config.CustomPrompts.UserPrompts.Match == "" {
		config.CustomPrompts.UserPrompts.Match = c.AI.CustomPrompts.UserPrompts.Match
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.MatchFile == "" {
		config.CustomPrompts.SystemPrompts.MatchFile = c.AI.CustomPrompts.SystemPrompts.MatchFile
	}
	if config.CustomPrompts.UserPrompts.MatchFile == "" {
		config.CustomPrompts.UserPrompts.MatchFile = c.AI.CustomPrompts.UserPrompts.MatchFile
	}

	return config
}

// GetRecommendConfig returns the AI configuration for recommendations with fallback to global config
func (c *Config) GetRecommendConfig() OperationAIConfig {
	config := c.AI.Recommend

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply operation-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Recommend == "" {
		config.CustomPrompts.SystemPrompts.Recommend = c.AI.CustomPrompts.SystemPrompts.Recommend
	}
	if config.CustomPrompts.UserPrompts.Recommend == "" {
		config.CustomPrompts.UserPrompts.Recommend = c.AI.CustomPrompts.UserPrompts.Recommend
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.RecommendFile == "" {
		config.CustomPrompts.SystemPrompts.RecommendFile = c.AI.CustomPrompts.SystemPrompts.RecommendFile
	}
	if config.CustomPrompts.UserPrompts.RecommendFile == "" {
		config.CustomPrompts.UserPrompts.RecommendFile = c.AI.CustomPrompts.UserPrompts.RecommendFile
	}

	return config
}

// GetLoadedAnalyzeResumePrompts returns a copy of the loaded prompts for resume analysis
func (c *Config) GetLoadedAnalyzeResumePrompts() OperationLoadedPrompts {
	return loadedPrompts.AnalyzeResume
}

// GetLoadedAnalyzeJobPrompts returns a copy of the loaded prompts for job analysis
func (c *Config) GetLoadedAnalyzeJobPrompts() OperationLoadedPrompts {
	return loadedPrompts.AnalyzeJob
}

// GetLoadedMatchPrompts returns a copy of the loaded prompts for match scoring
func (c *Config) GetLoadedMatchPrompts() OperationLoadedPrompts {
	return loadedPrompts.Match
}

// GetLoadedRecommendPrompts returns a copy of the loaded prompts for recommendations
func (c *Config) GetLoadedRecommendPrompts() OperationLoadedPrompts {
	return loadedPrompts.Recommend
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
