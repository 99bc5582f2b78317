// Package main implements the diskusage command, a friendly disk usage
// report for locally mounted macOS volumes.
package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matteocorti/diskusage-mac/internal/collector"
	"github.com/matteocorti/diskusage-mac/internal/config"
	osinfo "github.com/matteocorti/diskusage-mac/internal/os"
	"github.com/matteocorti/diskusage-mac/internal/report"
	"github.com/matteocorti/diskusage-mac/internal/utils"
)

var appversion = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		fsTypes  []string
		excludes []string
		jsonOut  bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:     "diskusage",
		Short:   "Friendly disk usage for macOS local volumes",
		Long: "diskusage shows one line per mounted local filesystem (APFS/HFS)\n" +
			"with its device, volume name, mount point and capacity figures.",
		Version:      appversion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.InitDefaultLogger(verbose); err != nil {
				return err
			}

			cfg := config.Default()
			if len(fsTypes) > 0 {
				cfg.FilesystemTypes = fsTypes
			}
			if cmd.Flags().Changed("exclude") {
				cfg.ExcludePrefixes = excludes
			}

			utils.LogDebug("starting scan", map[string]string{
				"run_id":  utils.GenerateRunID(),
				"version": appversion,
			})

			rows, err := collector.Collect(osinfo.NewDefault(), cfg)
			if err != nil {
				// The one fatal case: the mount listing itself failed
				return err
			}
			utils.LogDebug("scan completed", map[string]string{
				"mounts": strconv.Itoa(len(rows)),
			})

			if jsonOut {
				return report.RenderJSON(cmd.OutOrStdout(), rows)
			}
			report.Render(cmd.OutOrStdout(), rows, cfg)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fsTypes, "type", nil,
		"filesystem type to include (repeatable, default apfs, hfs, hfs+)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", config.Default().ExcludePrefixes,
		"mount path prefix to hide (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false,
		"emit the report as JSON instead of a table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log diagnostics to stderr")

	return cmd
}
