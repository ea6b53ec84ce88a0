package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pario-ai/tagtally/pkg/cache/file"
)

func newCacheCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the response cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(gf)
			if err != nil {
				return err
			}
			store := file.Open(cfg.CachePath, log)
			fmt.Fprintf(cmd.OutOrStdout(), "File:    %s\nEntries: %d\n", store.Path(), store.Len())
			return nil
		},
	}

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List cache keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(gf)
			if err != nil {
				return err
			}
			store := file.Open(cfg.CachePath, log)
			if store.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache is empty.")
				return nil
			}
			for _, k := range store.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove one cache entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(gf)
			if err != nil {
				return err
			}
			store := file.Open(cfg.CachePath, log)
			if _, ok := store.Get(args[0]); !ok {
				return fmt.Errorf("no cache entry for key %q", args[0])
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache entry removed.")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(gf)
			if err != nil {
				return err
			}
			if err := file.Open(cfg.CachePath, log).Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All cache entries cleared.")
			return nil
		},
	}

	cmd.AddCommand(statsCmd, keysCmd, deleteCmd, clearCmd)
	return cmd
}
