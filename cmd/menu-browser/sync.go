// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/menu-browser/internal/menu"
	"github.com/pdiddy/menu-browser/internal/source"
	"github.com/pdiddy/menu-browser/internal/store"
	"github.com/pdiddy/menu-browser/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Populate the local menu store from the remote catalog",
	Long: `Sync ensures the local database schema exists and, if the store is
empty, fetches the remote catalog once and persists it. A populated store is
left untouched unless --force is given, which refetches and replaces rows
that share an id (nothing is ever deleted).

A fetch failure is not fatal: the store is left as it was and the browser
works against whatever is cached, possibly an empty catalog.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg := browserConfig(cmd)
	force, _ := cmd.Flags().GetBool("force")

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	client := source.NewClient(cfg.Source, catalogToken(), logger)

	ctx := context.Background()
	var items []types.MenuItem
	if force {
		items, err = menu.Refresh(ctx, st, client, logger)
	} else {
		items, err = menu.Bootstrap(ctx, st, client, logger)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Local store ready: %d items across %d sections\n",
		len(items), len(menu.GroupSections(items)))
	return nil
}

func init() {
	syncCmd.Flags().Bool("force", false, "refetch the catalog even if the store is populated")

	rootCmd.AddCommand(syncCmd)
}
