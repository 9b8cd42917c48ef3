package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobfinder/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List the page content",
	Long:  "Prints the walkthrough steps, their media, and the testimonials from the active catalog.",
	RunE:  runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load content: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%s\n\n", catalog.Product, catalog.Repository)

	fmt.Fprintf(out, "%-22s %s\n", "Step", "Media")
	fmt.Fprintln(out, strings.Repeat("─", 64))
	for _, s := range catalog.Steps {
		fmt.Fprintf(out, "%-22s %s\n", s.Title, s.Media.Path)
	}

	fmt.Fprintf(out, "\n%-16s %s\n", "Author", "Quote")
	fmt.Fprintln(out, strings.Repeat("─", 64))
	for _, t := range catalog.Testimonials {
		fmt.Fprintf(out, "%-16s %s\n", t.Author, t.Quote)
	}

	fmt.Fprintf(out, "\nTotal: %d steps, %d testimonials\n", len(catalog.Steps), len(catalog.Testimonials))
	return nil
}
