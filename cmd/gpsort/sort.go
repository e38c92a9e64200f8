package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repsac/gp-sort-media/internal/pipeline"
)

var sortCmd = &cobra.Command{
	Use:   "sort <path>...",
	Short: "Sort media dumps and conform individual files",
	Long: `Sort one or more paths. Directory arguments run the full pipeline:
bucket files by extension, conform the known buckets to canonical folder
names, then cross-link proxy and thumbnail files to their high-res
siblings. File arguments are conformed individually by extension.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: loadConfig,
	RunE:    runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	if cfg.DryRun {
		logger.Warn("DRY RUN - no files will be renamed")
	}

	stats, err := pipeline.Run(cmd.Context(), &cfg, logger, args)
	if err != nil {
		return fail(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf(
		"Done: %d files bucketed, %d folders conformed, %d proxies and %d thumbnails linked",
		stats.Moved, stats.FoldersRenamed, stats.Proxies, stats.Thumbnails)))
	if stats.FilesConformed > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf(
			"Conformed %d individual files", stats.FilesConformed)))
	}
	return nil
}
