// Package report renders the collected mount rows as an aligned text table
// or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/matteocorti/diskusage-mac/internal/config"
	"github.com/matteocorti/diskusage-mac/internal/models"
)

// NoMountsMessage is printed when nothing survived the filters
const NoMountsMessage = "(no local APFS/HFS mounts found)"

// byteUnits are the 1024-based units used by HumanBytes
var byteUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// HumanBytes formats a byte count with 1024-based units. Plain bytes render
// as an integer, every larger unit with exactly one decimal.
func HumanBytes(n uint64) string {
	b := float64(n)
	for i, unit := range byteUnits {
		if b < 1024 || i == len(byteUnits)-1 {
			if i == 0 {
				return fmt.Sprintf("%d B", n)
			}
			return fmt.Sprintf("%.1f %s", b, unit)
		}
		b /= 1024
	}
	return fmt.Sprintf("%d B", n)
}

// SortRows orders rows ascending by mount path, case-insensitively
func SortRows(rows []models.MountRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].MountPath) < strings.ToLower(rows[j].MountPath)
	})
}

// Render writes the sorted, column-aligned table for rows. An empty row set
// produces a single informational line instead of an empty table.
func Render(w io.Writer, rows []models.MountRow, cfg *config.Config) {
	if len(rows) == 0 {
		fmt.Fprintln(w, NoMountsMessage)
		return
	}

	SortRows(rows)

	devW := columnWidth("Device", cfg.DeviceWidthMax, rows, func(r models.MountRow) string { return r.Device })
	labelW := columnWidth("Volume name", cfg.LabelWidthMax, rows, func(r models.MountRow) string { return r.VolumeLabel })
	mountW := columnWidth("Mount", cfg.MountWidthMax, rows, func(r models.MountRow) string { return r.MountPath })

	fmt.Fprintf(w, "%s  %s  %s  %12s  %12s  %12s  %6s\n",
		pad("Device", devW), pad("Volume name", labelW), pad("Mount", mountW),
		"Total", "Used", "Free", "Use%")
	fmt.Fprintf(w, "%s  %s  %s  %12s  %12s  %12s  %6s\n",
		strings.Repeat("-", devW), strings.Repeat("-", labelW), strings.Repeat("-", mountW),
		strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 12),
		strings.Repeat("-", 6))

	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s  %s  %12s  %12s  %12s  %5.1f%%\n",
			pad(clip(r.Device, devW), devW),
			pad(clip(r.VolumeLabel, labelW), labelW),
			pad(clip(r.MountPath, mountW), mountW),
			HumanBytes(r.TotalBytes),
			HumanBytes(r.UsedBytes),
			HumanBytes(r.AvailableBytes),
			r.UsedPercent)
	}
}

// RenderJSON writes the rows as an indented JSON array, in the same order
// the table would use
func RenderJSON(w io.Writer, rows []models.MountRow) error {
	SortRows(rows)
	if rows == nil {
		rows = []models.MountRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// columnWidth is max(header, widest cell), capped at limit
func columnWidth(header string, limit int, rows []models.MountRow, cell func(models.MountRow) string) int {
	w := utf8.RuneCountInString(header)
	for _, r := range rows {
		if n := utf8.RuneCountInString(cell(r)); n > w {
			w = n
		}
	}
	return min(w, limit)
}

// clip truncates s to at most width runes
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
