package cli

import (
	"context"
	"fmt"

	"jobmatch/internal/common"
	"jobmatch/internal/types"

	"github.com/spf13/cobra"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume [resume-file...]",
	Short: "Extract structured data from a resume",
	Long: `Analyze one or more plain-text resumes and extract structured data:
personal info, technical and soft skills, experience, education, languages,
and certifications. Skill names are canonicalized against the skill map.

With a single file the result honors the --format flag. With multiple files
the resumes are analyzed concurrently and the output is always JSON.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		analyzeResumeConfig.MaxFileSize = cfg.App.MaxFileSize
		// Apply default format if not specified
		if analyzeResumeConfig.OutputFormat == "" {
			analyzeResumeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if len(args) > 1 && analyzeResumeConfig.OutputFormat != "json" {
			return fmt.Errorf("batch analysis only supports the json output format")
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeResumeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyzeResume,
}

var analyzeResumeConfig common.CommandConfig

func init() {
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeResumeCmd.Flags().StringVar(&analyzeResumeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeResumeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyzeResume(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	runtime, err := newEngineRuntime(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer runtime.Close(context.Background())

	logDetails := func(texts []string, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resumes", len(texts),
			"output_format", cmdCfg.OutputFormat)
	}

	if len(args) == 1 {
		operation := func(ctx context.Context, texts []string) (types.NormalizedResume, error) {
			return runtime.engine.AnalyzeResume(ctx, texts[0]), nil
		}
		err = common.RunEngineCommand(cmd.Context(), logger, analyzeResumeConfig, args,
			passThroughContents, operation, logDetails)
	} else {
		operation := func(ctx context.Context, texts []string) ([]types.NormalizedResume, error) {
			results := runtime.engine.AnalyzeResumeBatch(ctx, texts)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return results, nil
		}
		err = common.RunEngineCommand(cmd.Context(), logger, analyzeResumeConfig, args,
			passThroughContents, operation, logDetails)
	}

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}

func passThroughContents(contents []string) ([]string, error) {
	return contents, nil
}
