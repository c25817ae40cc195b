package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf>",
	Short: "Convert a PDF file to Markdown",
	Long: `Convert extracts the plain text of every page and writes one Markdown
document with a "## Page N" heading per page. Output goes to stdout unless
--output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "write Markdown to this file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if size := int64(len(pdfBytes)); size > container.Config.GetMaxFileSize() {
		return fmt.Errorf("%s is %d bytes, limit is %d", path, size, container.Config.GetMaxFileSize())
	}

	doc, err := container.Converter.Convert(cmd.Context(), pdfBytes, filepath.Base(path))
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.Content)
		return err
	}
	if err := os.WriteFile(out, []byte(doc.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d pages to %s\n", doc.PageCount, out)
	return nil
}
