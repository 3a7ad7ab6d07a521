// faqlint validates the curated data files offline: the knowledge-base
// schema and the source-domain whitelist. It runs in CI and before every
// data update, independently of the serving binary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fundwise/faqd/internal/validate"
)

func main() {
	root := &cobra.Command{
		Use:   "faqlint",
		Short: "Offline validation for faqd data files",
		Long: `faqlint checks the curated FAQ data before it is served:
entry schema (required fields, URL sources, ISO dates) and the
official-domain whitelist for cited sources.`,
		SilenceUsage: true,
	}

	root.AddCommand(schemaCmd())
	root.AddCommand(sourcesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [faqs.json]",
		Short: "Validate knowledge-base entries against the required schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("data", "faqs.json")
			if len(args) > 0 {
				path = args[0]
			}

			data, err := os.ReadFile(filepath.Clean(path))
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			fmt.Printf("Validating FAQs in: %s\n", path)

			reports, err := validate.Schema(data)
			if err != nil {
				return err
			}

			errCount := 0
			for _, rep := range reports {
				for _, w := range rep.Warnings {
					fmt.Printf("  [warn] %s: %s\n", rep.Key, w)
				}
				for _, e := range rep.Errors {
					fmt.Printf("  [fail] %s: %s\n", rep.Key, e)
					errCount++
				}
			}

			if errCount > 0 {
				return fmt.Errorf("%d validation error(s)", errCount)
			}
			fmt.Println("All FAQ entries are valid.")
			return nil
		},
	}
}

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [sources.csv]",
		Short: "Check that every cited source belongs to a whitelisted domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("data", "sources.csv")
			if len(args) > 0 {
				path = args[0]
			}

			f, err := os.Open(filepath.Clean(path))
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			fmt.Printf("Validating sources in: %s\n", path)
			fmt.Printf("Whitelisted domains: %s\n", strings.Join(validate.OfficialDomains, ", "))

			violations, err := validate.Sources(f)
			if err != nil {
				return err
			}

			for _, v := range violations {
				fmt.Printf("  [fail] row %d: %s (domain: %s)\n", v.Row, v.URL, v.Domain)
			}

			if len(violations) > 0 {
				return fmt.Errorf("%d URL(s) from non-whitelisted domains", len(violations))
			}
			fmt.Println("All URLs are from whitelisted official domains.")
			return nil
		},
	}
}
