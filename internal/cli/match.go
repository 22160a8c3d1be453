package cli

import (
	"context"
	"fmt"

	"jobmatch/internal/common"
	"jobmatch/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-file]",
	Short: "Score how well a resume fits a job posting",
	Long: `Analyze a resume and a job posting, then compute a compatibility score.
The overall score is a weighted blend of technical skills, soft skills,
experience, education, and job title similarity, reported on a 0-100 scale
together with matched skills, missing skills, and recommendations.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		matchConfig.MaxFileSize = cfg.App.MaxFileSize
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var (
	matchConfig   common.CommandConfig
	matchJobTitle string
)

// pairInput carries the raw resume and job texts for pairwise operations.
type pairInput struct {
	ResumeText string
	JobText    string
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	matchCmd.Flags().StringVar(&matchJobTitle, "job-title", "", "Job title when not stated in the job file")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func createPairInput(contents []string) (pairInput, error) {
	if len(contents) != 2 {
		return pairInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
	}
	return pairInput{
		ResumeText: contents[0],
		JobText:    contents[1],
	}, nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	runtime, err := newEngineRuntime(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer runtime.Close(context.Background())

	logDetails := func(input pairInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting match calculation",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobText),
			"output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context, input pairInput) (types.MatchResult, error) {
		resume := runtime.engine.AnalyzeResume(ctx, input.ResumeText)
		job := runtime.engine.AnalyzeJob(ctx, types.JobPosting{
			Title:       matchJobTitle,
			Description: input.JobText,
		})
		return runtime.engine.CalculateMatch(ctx, resume, job), nil
	}

	err = common.RunEngineCommand(cmd.Context(), logger, matchConfig, args,
		createPairInput, operation, logDetails)

	if err != nil {
		return fmt.Errorf("failed to calculate match: %w", err)
	}
	logger.Info("Match calculation completed successfully")
	return nil
}
