// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/menu-browser/internal/menu"
	"github.com/pdiddy/menu-browser/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [text]",
	Short: "Write the grouped catalog to YAML or JSON",
	Long: `Export writes the cached catalog, grouped into sections, to stdout or
--out. The same text and --category filters as search apply, so a filtered
subset can be exported.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := browserConfig(cmd)
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	categories, _ := cmd.Flags().GetStringSlice("category")

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

	var data []byte
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(sections)
	case "json":
		data, err = json.MarshalIndent(sections, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported %d sections to %s\n", len(sections), outPath)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default stdout)")
	exportCmd.Flags().StringSlice("category", nil, "restrict to a category (repeatable)")

	rootCmd.AddCommand(exportCmd)
}
