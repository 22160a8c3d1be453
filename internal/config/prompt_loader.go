package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// PromptSource represents where a prompt was loaded from
type PromptSource struct {
	Source    string // "file", "operation-config", "global-config", or "default"
	FilePath  string // Set if Source is "file"
	Operation string // The operation this prompt is for
	Type      string // "system" or "user"
}

// GetLoadedPrompts returns the loaded prompt content in a thread-safe way
func GetLoadedPrompts() *AllLoadedPrompts {
	return &loadedPrompts
}

// trackPromptSource tracks the source of a prompt for debugging
func (c *Config) trackPromptSource(source PromptSource) {
	// Prompt source tracking can be implemented when new logging is hooked up
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	// Initialize loaded prompts exactly once
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &loadedPrompts.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &loadedPrompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	operations := []struct {
		name  string
		opCfg *OperationAIConfig
		store *OperationLoadedPrompts
	}{
		{"analyzeResume", &c.AI.AnalyzeResume, &loadedPrompts.AnalyzeResume},
		{"analyzeJob", &c.AI.AnalyzeJob, &loadedPrompts.AnalyzeJob},
		{"match", &c.AI.Match, &loadedPrompts.Match},
		{"recommend", &c.AI.Recommend, &loadedPrompts.Recommend},
	}
	for _, op := range operations {
		if err := c.loadSystemPromptsFromFiles(&op.opCfg.CustomPrompts.SystemPrompts, &op.store.SystemPrompts); err != nil {
			return fmt.Errorf("failed to load %s system prompts: %w", op.name, err)
		}
		if err := c.loadUserPromptsFromFiles(&op.opCfg.CustomPrompts.UserPrompts, &op.store.UserPrompts); err != nil {
			return fmt.Errorf("failed to load %s user prompts: %w", op.name, err)
		}
	}

	// Log summary of prompt sources after loading
	c.logPromptLoadingSummary()

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	entries := []struct {
		file      string
		operation string
		dest      *string
	}{
		{prompts.AnalyzeResumeFile, "analyzeResume", &target.AnalyzeResume},
		{prompts.AnalyzeJobFile, "analyzeJob", &target.AnalyzeJob},
		{prompts.MatchFile, "match", &target.Match},
		{prompts.RecommendFile, "recommend", &target.Recommend},
	}

	for _, entry := range entries {
		if entry.file == "" {
			continue
		}
		content, err := c.loadPromptFromFile(entry.file, "system", entry.operation)
		if err != nil {
			return err
		}
		*entry.dest = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	entries := []struct {
		file      string
		operation string
		dest      *string
	}{
		{prompts.AnalyzeResumeFile, "analyzeResume", &target.AnalyzeResume},
		{prompts.AnalyzeJobFile, "analyzeJob", &target.AnalyzeJob},
		{prompts.MatchFile, "match", &target.Match},
		{prompts.RecommendFile, "recommend", &target.Recommend},
	}

	for _, entry := range entries {
		if entry.file == "" {
			continue
		}
		content, err := c.loadPromptFromFile(entry.file, "user", entry.operation)
		if err != nil {
			return err
		}
		*entry.dest = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Track prompt source
	c.trackPromptSource(PromptSource{
		Source:    "file",
		FilePath:  filePath,
		Operation: operation,
		Type:      promptType,
	})

	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	// Log successful loading
	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	// Helper function to validate a file path
	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	validatePromptConfig := func(prefix string, prompts *PromptConfig) {
		validateFile(prompts.SystemPrompts.AnalyzeResumeFile, prefix+"system", "analyzeResume")
		validateFile(prompts.SystemPrompts.AnalyzeJobFile, prefix+"system", "analyzeJob")
		validateFile(prompts.SystemPrompts.MatchFile, prefix+"system", "match")
		validateFile(prompts.SystemPrompts.RecommendFile, prefix+"system", "recommend")
		validateFile(prompts.UserPrompts.AnalyzeResumeFile, prefix+"user", "analyzeResume")
		validateFile(prompts.UserPrompts.AnalyzeJobFile, prefix+"user", "analyzeJob")
		validateFile(prompts.UserPrompts.MatchFile, prefix+"user", "match")
		validateFile(prompts.UserPrompts.RecommendFile, prefix+"user", "recommend")
	}

	// Validate global prompt files
	validatePromptConfig("", &c.AI.CustomPrompts)

	// Validate operation-specific prompt files
	validatePromptConfig("analyzeResume ", &c.AI.AnalyzeResume.CustomPrompts)
	validatePromptConfig("analyzeJob ", &c.AI.AnalyzeJob.CustomPrompts)
	validatePromptConfig("match ", &c.AI.Match.CustomPrompts)
	validatePromptConfig("recommend ", &c.AI.Recommend.CustomPrompts)

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary() {
	log.Println("[CONFIG] === Custom Prompt Loading Summary ===")

	promptCount := c.countAndLogLoadedPrompts()

	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", promptCount)
	}

	log.Println("[CONFIG] ==========================================")
}

// countAndLogLoadedPrompts counts and logs all loaded prompts, returning the total count
func (c *Config) countAndLogLoadedPrompts() int {
	promptCount := 0

	promptChecks := []struct {
		content string
		message string
	}{
		{loadedPrompts.Global.SystemPrompts.AnalyzeResume, "[CONFIG] Global system analyzeResume prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.AnalyzeJob, "[CONFIG] Global system analyzeJob prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.Match, "[CONFIG] Global system match prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.Recommend, "[CONFIG] Global system recommend prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.AnalyzeResume, "[CONFIG] Global user analyzeResume prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.AnalyzeJob, "[CONFIG] Global user analyzeJob prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.Match, "[CONFIG] Global user match prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.Recommend, "[CONFIG] Global user recommend prompt: loaded from config/file"},
		{loadedPrompts.AnalyzeResume.SystemPrompts.AnalyzeResume, "[CONFIG] analyzeResume-specific system prompt: loaded from config/file"},
		{loadedPrompts.AnalyzeResume.UserPrompts.AnalyzeResume, "[CONFIG] analyzeResume-specific user prompt: loaded from config/file"},
		{loadedPrompts.AnalyzeJob.SystemPrompts.AnalyzeJob, "[CONFIG] analyzeJob-specific system prompt: loaded from config/file"},
		{loadedPrompts.AnalyzeJob.UserPrompts.AnalyzeJob, "[CONFIG] analyzeJob-specific user prompt: loaded from config/file"},
		{loadedPrompts.Match.SystemPrompts.Match, "[CONFIG] match-specific system prompt: loaded from config/file"},
		{loadedPrompts.Match.UserPrompts.Match, "[CONFIG] match-specific user prompt: loaded from config/file"},
		{loadedPrompts.Recommend.SystemPrompts.Recommend, "[CONFIG] recommend-specific system prompt: loaded from config/file"},
		{loadedPrompts.Recommend.UserPrompts.Recommend, "[CONFIG] recommend-specific user prompt: loaded from config/file"},
	}

	for _, check := range promptChecks {
		if check.content != "" {
			log.Println(check.message)
			promptCount++
		}
	}

	return promptCount
}
