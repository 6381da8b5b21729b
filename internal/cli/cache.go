package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}

			store, err := c.newCache(cfg, false)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared cache")
			printDetail("Backend: %s", describeCache(cfg))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeCache(cfg))
			return nil
		},
	}
}

// describeCache names the configured backend: the directory for the file
// cache, the URL otherwise.
func describeCache(cfg Config) string {
	if !isFileCache(cfg.Cache.URL) {
		return cfg.Cache.URL
	}
	dir, err := cacheDir()
	if err != nil {
		return "(unavailable)"
	}
	return dir
}
