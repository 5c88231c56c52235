package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"keyword_backend/internal/api"
	"keyword_backend/internal/app/config"
	"keyword_backend/internal/app/di"
	"keyword_backend/internal/feature/keywords/adapters/htmltext"
	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
	"keyword_backend/internal/platform/logging"
)

var (
	extractFormat   string
	extractPipeline string
	extractMinCount int
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract keywords from a file or standard input",
	Long: `Reads text from the given file (or stdin when omitted), validates it like POST /analyze
and prints {"keywords": [...]} as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		_ = logging.InitLogger(logging.Options{Env: cfg.AppEnv, Level: "error"})
		if extractPipeline != "" {
			cfg.Pipeline = extractPipeline
		}
		if cmd.Flags().Changed("min-count") {
			cfg.MinCount = extractMinCount
		}

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer closeLogged(f, "input file")
			in = f
		}

		ctx := cmd.Context()
		pipeline, err := di.NewPipeline(ctx, cfg, nil)
		if err != nil {
			return err
		}
		uc := usecase.NewKeywordsUsecase(pipeline, nil, usecase.NewRanker(cfg.MinCount))
		return runExtract(ctx, in, cmd.OutOrStdout(), extractFormat, uc)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", usecase.FormatText, "input format: text or html")
	extractCmd.Flags().StringVar(&extractPipeline, "pipeline", "", "NLP pipeline: prose, gemini or remote (default from NLP_PIPELINE)")
	extractCmd.Flags().IntVar(&extractMinCount, "min-count", usecase.DefaultMinCount, "minimum occurrences for a keyword")
	rootCmd.AddCommand(extractCmd)
}

// extractor is the part of the keywords usecase the CLI needs.
type extractor interface {
	Extract(ctx context.Context, text string) (*entity.Result, error)
}

// runExtract validates the input, runs the extractor and writes the JSON result.
func runExtract(ctx context.Context, in io.Reader, out io.Writer, format string, uc extractor) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text, err := usecase.ValidateText(map[string]any{"text": string(raw), "format": format}, htmltext.NewConverter())
	if err != nil {
		return err
	}

	result, err := uc.Extract(ctx, text)
	if err != nil {
		return err
	}

	keywords := result.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(api.KeywordsResponse{Keywords: keywords, Message: result.Message})
}
