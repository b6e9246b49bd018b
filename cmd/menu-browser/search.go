// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/menu-browser/internal/menu"
	"github.com/pdiddy/menu-browser/internal/store"
	"github.com/pdiddy/menu-browser/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Run a one-shot filtered query against the local store",
	Long: `Search filters the cached catalog by free text and category and prints
the matches grouped into sections. Text matching is case-insensitive
substring matching on the title; empty text matches everything. With no
--category flags every category matches.

The remote catalog is never contacted; run sync first to populate the store.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := browserConfig(cmd)
	categories, _ := cmd.Flags().GetStringSlice("category")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	sel := menu.AllCategories()
	if len(categories) > 0 {
		sel = menu.RestrictedTo(categories...)
	}

	engine := menu.NewEngine(st)
	items, err := engine.Filter(context.Background(), strings.Join(args, " "), sel)
	if err != nil {
		return err
	}

	sections := menu.GroupSections(items)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	}

	printSections(sections)
	return nil
}

func printSections(sections []types.Section) {
	if len(sections) == 0 {
		fmt.Println("No matching items.")
		return
	}

	total := 0
	for _, section := range sections {
		fmt.Printf("%s\n%s\n", section.Title, strings.Repeat("-", len(section.Title)))
		for _, item := range section.Items {
			fmt.Printf("  %-4d  %-40s  $%s\n", item.ID, item.Title, item.Price)
		}
		fmt.Println()
		total += len(section.Items)
	}
	fmt.Printf("%d items in %d sections\n", total, len(sections))
}

func init() {
	searchCmd.Flags().StringSlice("category", nil, "restrict to a category (repeatable)")
	searchCmd.Flags().Bool("json", false, "output sections as JSON")

	rootCmd.AddCommand(searchCmd)
}
