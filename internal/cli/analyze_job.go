package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"jobmatch/internal/common"
	"jobmatch/internal/types"

	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job [job-file]",
	Short: "Extract structured data from a job posting",
	Long: `Analyze a job posting and extract structured data: required skills,
experience level, requirements, benefits, and an inferred category. The file
holds the free-text description; posting metadata that is not stated in the
text can be supplied with flags.

With --batch the file must contain a JSON array of postings
({"title", "company", "description", ...}). Postings are analyzed
concurrently with per-item error isolation and the output is always JSON.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		analyzeJobConfig.MaxFileSize = cfg.App.MaxFileSize
		// Apply default format if not specified
		if analyzeJobConfig.OutputFormat == "" {
			analyzeJobConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if analyzeJobBatch && analyzeJobConfig.OutputFormat != "json" {
			return fmt.Errorf("batch analysis only supports the json output format")
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeJobConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyzeJob,
}

var (
	analyzeJobConfig  common.CommandConfig
	analyzeJobBatch   bool
	analyzeJobPosting types.JobPosting
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeJobCmd.Flags().BoolVar(&analyzeJobBatch, "batch", false, "Treat the file as a JSON array of postings")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.Title, "title", "", "Job title (overrides anything inferred from the text)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.Company, "company", "", "Company name")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.Location, "location", "", "Job location")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.JobType, "job-type", "", "Contract type (CLT, PJ, ...)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.ExperienceLevel, "experience-level", "", "Required experience level")
	analyzeJobCmd.Flags().StringVar(&analyzeJobPosting.SalaryRange, "salary-range", "", "Salary range")

	// Add completion for format flag
	_ = analyzeJobCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyzeJob(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	runtime, err := newEngineRuntime(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer runtime.Close(context.Background())

	if analyzeJobBatch {
		err = runAnalyzeJobBatch(cmd.Context(), runtime, args)
	} else {
		createInput := func(contents []string) (types.JobPosting, error) {
			posting := analyzeJobPosting
			posting.Description = contents[0]
			return posting, nil
		}

		logDetails := func(posting types.JobPosting, cmdCfg common.CommandConfig) {
			logger.Info("Starting job analysis",
				"title", posting.Title,
				"job_chars", len(posting.Description),
				"output_format", cmdCfg.OutputFormat)
		}

		operation := func(ctx context.Context, posting types.JobPosting) (types.NormalizedJob, error) {
			return runtime.engine.AnalyzeJob(ctx, posting), nil
		}

		err = common.RunEngineCommand(cmd.Context(), logger, analyzeJobConfig, args,
			createInput, operation, logDetails)
	}

	if err != nil {
		return fmt.Errorf("failed to analyze job posting: %w", err)
	}
	logger.Info("Job analysis completed successfully")
	return nil
}

func runAnalyzeJobBatch(ctx context.Context, runtime *engineRuntime, args []string) error {
	createInput := func(contents []string) ([]types.JobPosting, error) {
		var postings []types.JobPosting
		if err := json.Unmarshal([]byte(contents[0]), &postings); err != nil {
			return nil, fmt.Errorf("batch file is not a JSON array of postings: %w", err)
		}
		return postings, nil
	}

	logDetails := func(postings []types.JobPosting, cmdCfg common.CommandConfig) {
		runtime.logger.Info("Starting batch job analysis",
			"postings", len(postings),
			"output_format", cmdCfg.OutputFormat)
	}

	operation := func(ctx context.Context, postings []types.JobPosting) ([]types.NormalizedJob, error) {
		results := runtime.engine.AnalyzeJobBatch(ctx, postings)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}

	return common.RunEngineCommand(ctx, runtime.logger, analyzeJobConfig, args,
		createInput, operation, logDetails)
}
