// Package config holds the filter and formatting settings for a report run
package config

import "strings"

// Config holds the settings for one scan-and-report run
type Config struct {
	// FilesystemTypes is the allow-set of local filesystem types
	FilesystemTypes []string
	// ExcludePrefixes lists mount path prefixes that are never reported
	ExcludePrefixes []string
	// Column width caps; longer cells are truncated, not wrapped
	DeviceWidthMax int
	LabelWidthMax  int
	MountWidthMax  int
}

// Default returns the baseline configuration: macOS local filesystem types,
// with system helper volumes and Time Machine snapshots hidden.
func Default() *Config {
	return &Config{
		FilesystemTypes: []string{"apfs", "hfs", "hfs+"},
		ExcludePrefixes: []string{"/System/", "/Volumes/.time"},
		DeviceWidthMax:  18,
		LabelWidthMax:   24,
		MountWidthMax:   40,
	}
}

// AllowsFilesystem reports whether fstype is in the allow-set
func (c *Config) AllowsFilesystem(fstype string) bool {
	for _, t := range c.FilesystemTypes {
		if strings.EqualFold(t, fstype) {
			return true
		}
	}
	return false
}

// ExcludesPath reports whether mountPath falls under an excluded prefix
func (c *Config) ExcludesPath(mountPath string) bool {
	for _, prefix := range c.ExcludePrefixes {
		if strings.HasPrefix(mountPath, prefix) {
			return true
		}
	}
	return false
}
