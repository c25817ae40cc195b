package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pdf-md-translator/internal/domain"
)

var translateCmd = &cobra.Command{
	Use:   "translate <file.md|->",
	Short: "Translate a Markdown file",
	Long: `Translate sends Markdown to the chosen provider and prints the result.
Use "-" to read from stdin. Translating to English prints a notice and
makes no provider call.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("to", "", "target language display name, e.g. French")
	translateCmd.Flags().String("provider", string(domain.ProviderLLM), "translation provider: deepl or llm")
	translateCmd.Flags().String("key", "", "API key for the provider (default from DEEPL_API_KEY or OPENAI_API_KEY)")
	translateCmd.Flags().StringP("output", "o", "", "write the translation to this file instead of stdout")
	_ = translateCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd)
	if err != nil {
		return err
	}

	providerFlag, _ := cmd.Flags().GetString("provider")
	kind, ok := domain.ParseProviderKind(providerFlag)
	if !ok {
		return fmt.Errorf("unknown provider %q (want deepl or llm)", providerFlag)
	}

	markdown, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	credentials := container.Config.GetSeedCredentials()
	if key, _ := cmd.Flags().GetString("key"); key != "" {
		credentials[kind] = key
	}

	target, _ := cmd.Flags().GetString("to")
	result, err := container.Dispatcher.Translate(cmd.Context(), domain.TranslationRequest{
		Markdown:       markdown,
		TargetLanguage: target,
		Provider:       kind,
	}, credentials)
	if err != nil {
		return err
	}
	if result.NoOp {
		fmt.Fprintln(cmd.ErrOrStderr(), "Already in English, no translation needed.")
		return nil
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return err
	}
	if err := os.WriteFile(out, []byte(result.Text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s translation to %s\n", result.TargetLanguage, out)
	return nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
