package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf-md-translator/internal/domain"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List selectable target languages",
	Long: `Languages prints every target language with its DeepL code. The LLM
provider also accepts free-text language names.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range domain.SelectableLanguages() {
			code, ok := domain.LanguageCode(name)
			if !ok {
				code = "-"
			}
			if _, err := fmt.Fprintf(w, "%-22s %s\n", name, code); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
