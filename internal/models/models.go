// Package models defines the data structures that make up a mount report
package models

// MountRow represents one mounted local filesystem in the report
type MountRow struct {
	Device         string  `json:"device"`
	VolumeLabel    string  `json:"volume_label"`
	MountPath      string  `json:"mount_path"`
	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}
