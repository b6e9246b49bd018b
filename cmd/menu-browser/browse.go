// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/menu-browser/internal/browse"
	"github.com/pdiddy/menu-browser/internal/menu"
	"github.com/pdiddy/menu-browser/internal/source"
	"github.com/pdiddy/menu-browser/internal/store"
	"github.com/pdiddy/menu-browser/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive search session over the cached catalog",
	Long: `Browse starts an interactive session. Each line typed is treated as the
current search text and committed after a short quiet period, so the view
follows what you settle on rather than every keystroke. Commands:

  /toggle N   flip category filter N (see the numbered list at startup)
  /filters    show the current toggle state
  /quit       exit

With no category toggled on, every category matches.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := browserConfig(cmd)

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	client := source.NewClient(cfg.Source, catalogToken(), logger)
	if _, err := menu.Bootstrap(ctx, st, client, logger); err != nil {
		return err
	}

	o := browse.New(menu.NewEngine(st), cfg.Browse, logger)
	o.OnUpdate(func(sections []types.Section) {
		fmt.Println()
		printSections(sections)
		fmt.Print("> ")
	})
	o.OnError(func(err error) {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
	})

	known := o.Categories()
	fmt.Println("Categories:")
	for i, c := range known {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
	fmt.Println()

	o.Refresh(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "/quit":
			return nil
		case line == "/filters":
			flags := o.Flags()
			for i, c := range known {
				state := "off"
				if flags[i] {
					state = "on"
				}
				fmt.Printf("  %d. %-12s %s\n", i+1, c, state)
			}
			fmt.Print("> ")
		case strings.HasPrefix(line, "/toggle "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/toggle ")))
			if err != nil || n < 1 || n > len(known) {
				fmt.Printf("usage: /toggle N with N between 1 and %d\n> ", len(known))
				continue
			}
			o.Toggle(ctx, n-1)
		default:
			o.SetText(line)
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
