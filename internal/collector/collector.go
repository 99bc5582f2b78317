// Package collector assembles the mount report: it filters the raw mount
// listing and attaches capacity statistics and volume labels to each
// surviving entry.
package collector

import (
	"strings"

	"github.com/matteocorti/diskusage-mac/internal/config"
	"github.com/matteocorti/diskusage-mac/internal/models"
	osinfo "github.com/matteocorti/diskusage-mac/internal/os"
	"github.com/matteocorti/diskusage-mac/internal/utils"
)

// Collect enumerates the mounted filesystems and produces the report rows
// in encounter order. It returns an error only when the mount listing
// itself cannot be obtained; everything that goes wrong for an individual
// mount just drops that mount from the report.
func Collect(prims osinfo.SystemPrimitives, cfg *config.Config) ([]models.MountRow, error) {
	entries, err := osinfo.ListMounts(prims)
	if err != nil {
		return nil, err
	}
	return buildRows(prims, cfg, entries), nil
}

func buildRows(prims osinfo.SystemPrimitives, cfg *config.Config, entries []osinfo.MountEntry) []models.MountRow {
	labels := osinfo.NewLabelResolver(prims)
	seen := make(map[string]bool)
	rows := make([]models.MountRow, 0, len(entries))

	for _, entry := range entries {
		if seen[entry.MountPath] || !includeEntry(prims, cfg, entry) {
			continue
		}
		seen[entry.MountPath] = true

		stat, err := prims.StatFS(entry.MountPath)
		if err != nil {
			utils.LogWarn("skipping mount, statistics query failed", map[string]string{
				"mount": entry.MountPath,
				"error": err.Error(),
			})
			continue
		}

		rows = append(rows, buildRow(entry, stat, labels.Label(entry.Device)))
	}

	return rows
}

// includeEntry applies the filter rules: allowed filesystem type, absolute
// mount path, no excluded prefix, and the path must still exist on disk.
func includeEntry(prims osinfo.SystemPrimitives, cfg *config.Config, entry osinfo.MountEntry) bool {
	if !cfg.AllowsFilesystem(entry.FSType) {
		return false
	}
	if !strings.HasPrefix(entry.MountPath, "/") {
		return false
	}
	if cfg.ExcludesPath(entry.MountPath) {
		return false
	}
	if _, err := prims.OSStat(entry.MountPath); err != nil {
		// The mount can vanish between enumeration and here
		return false
	}
	return true
}

// buildRow derives the byte totals from the raw block counts
func buildRow(entry osinfo.MountEntry, stat osinfo.BlockStat, label string) models.MountRow {
	total := stat.Blocks * stat.BlockSize
	used := (stat.Blocks - stat.BlocksFree) * stat.BlockSize
	avail := stat.BlocksAvail * stat.BlockSize

	pct := 0.0
	if total > 0 {
		pct = float64(used) / float64(total) * 100.0
	}

	return models.MountRow{
		Device:         entry.Device,
		VolumeLabel:    label,
		MountPath:      entry.MountPath,
		TotalBytes:     total,
		UsedBytes:      used,
		AvailableBytes: avail,
		UsedPercent:    pct,
	}
}
