// Package main is the entry point for the pdfmd CLI, a terminal front end to
// the same converter and translation providers the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pdf-md-translator/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "pdfmd",
	Short:   "Convert PDFs to Markdown and translate the result",
	Version: version,
	Long: `pdfmd extracts the text of a PDF into Markdown with one "## Page N"
heading per page, and translates Markdown through DeepL or an
OpenAI-compatible chat model.

API keys are read from --key, or from DEEPL_API_KEY and OPENAI_API_KEY.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("pdf-backend", "", "pdf backend: native or fitz (default from PDF_BACKEND)")
}

// newContainer builds the service container, letting flags override the
// environment.
func newContainer(cmd *cobra.Command) (*config.Container, error) {
	cfg, ok := config.NewConfig().(*config.AppConfig)
	if !ok {
		return nil, fmt.Errorf("unexpected config type")
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if backend, _ := cmd.Flags().GetString("pdf-backend"); backend != "" {
		cfg.PDFBackend = backend
	}
	return config.NewContainerWithConfig(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
