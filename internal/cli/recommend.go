package cli

import (
	"context"
	"fmt"

	"jobmatch/internal/common"
	"jobmatch/internal/types"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [resume-file] [job-file]",
	Short: "Generate improvement recommendations for a candidate",
	Long: `Analyze a resume against a job posting and produce a report with the
candidate's strengths, the gaps that hold the application back, and concrete
recommendations to close them.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		recommendConfig.MaxFileSize = cfg.App.MaxFileSize
		// Apply default format if not specified
		if recommendConfig.OutputFormat == "" {
			recommendConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(recommendConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRecommend,
}

var (
	recommendConfig   common.CommandConfig
	recommendJobTitle string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	recommendCmd.Flags().StringVar(&recommendJobTitle, "job-title", "", "Job title when not stated in the job file")

	// Add completion for format flag
	_ = recommendCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	runtime, err := newEngineRuntime(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer runtime.Close(context.Background())

	logDetails := func(input pairInput, cmdCfg common.CommandConfig) {
		logger.Info("Starting recommendation report",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobText),
			"output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context, input pairInput) (types.RecommendationReport, error) {
		resume := runtime.engine.AnalyzeResume(ctx, input.ResumeText)
		job := runtime.engine.AnalyzeJob(ctx, types.JobPosting{
			Title:       recommendJobTitle,
			Description: input.JobText,
		})
		return runtime.engine.GenerateRecommendations(ctx, resume, job), nil
	}

	err = common.RunEngineCommand(cmd.Context(), logger, recommendConfig, args,
		createPairInput, operation, logDetails)

	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}
	logger.Info("Recommendation report completed successfully")
	return nil
}
