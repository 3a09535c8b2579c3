package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"screen-qna/config"
	"screen-qna/llm"
	"screen-qna/logutil"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "screenqna",
	Short: "Answer on-screen questions with OCR and an AI model",
	Long: `ScreenQnA captures a screen region, extracts the question rendered
there via OCR, and asks a language model for a concise answer.

Modes:
  watch   continuously scan the screen (or a fixed region) for new questions
  snap    drag a rectangle around a question and answer it once
  gui     windowed variant with a Select & Answer button`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("screenqna v0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// newClient loads configuration and builds the answer-service client.
// A missing credential surfaces here, before any capture or network work.
func newClient(model string) (*llm.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logutil.Setup(cfg.EnableFileLogging)

	if model == "" {
		model = cfg.Model
	}
	client, err := llm.New(llm.Config{
		APIKey:    cfg.APIKey,
		OrgID:     cfg.OrgID,
		ProjectID: cfg.ProjectID,
		Model:     model,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Answer client ready: model=%s key=%s", model, logutil.RedactKey(cfg.APIKey))
	return client, cfg, nil
}
