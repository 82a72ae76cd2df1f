package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/docqa/docqa/internal/completion"
	"github.com/docqa/docqa/internal/config"
	"github.com/docqa/docqa/internal/extract"
	"github.com/docqa/docqa/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	askFile        string
	askQuestion    string
	askPrintPrompt bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer one question about a local file",
	Example: `  docqa ask --file report.pdf --question "What is the conclusion?"
  docqa ask -f notes.txt -q "Who attended?" --print-prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if askFile == "" || askQuestion == "" {
			return errors.New("--file and --question are required")
		}
		content, err := os.ReadFile(askFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		text, _, err := extract.Extract(filepath.Base(askFile), content)
		if err != nil {
			return err
		}
		p := prompt.Build(text, askQuestion)
		if askPrintPrompt {
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		client, err := completion.NewMistralClient(completion.MistralConfig{
			APIKey:  cfg.Mistral.APIKey,
			BaseURL: cfg.Mistral.BaseURL,
			Model:   cfg.Mistral.Model,
			Timeout: cfg.Mistral.Timeout,
		})
		if err != nil {
			return err
		}
		return runAsk(cmd.Context(), client, p, cmd.OutOrStdout())
	},
}

func runAsk(ctx context.Context, c completion.Completer, p string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	answer, err := c.Complete(ctx, p)
	if err != nil {
		return fmt.Errorf("Error calling Mistral API: %w", err)
	}
	fmt.Fprintln(out, answer)
	fmt.Fprintf(os.Stderr, "(answered in %s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func init() {
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "document to read (.txt, .md, .pdf or any UTF-8 text)")
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to ask")
	askCmd.Flags().BoolVar(&askPrintPrompt, "print-prompt", false, "print the prompt instead of calling the provider")
}
