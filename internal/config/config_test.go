package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"apfs", "hfs", "hfs+"}, cfg.FilesystemTypes)
	assert.Equal(t, []string{"/System/", "/Volumes/.time"}, cfg.ExcludePrefixes)
	assert.Equal(t, 18, cfg.DeviceWidthMax)
	assert.Equal(t, 24, cfg.LabelWidthMax)
	assert.Equal(t, 40, cfg.MountWidthMax)
}

func TestAllowsFilesystem(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.AllowsFilesystem("apfs"))
	assert.True(t, cfg.AllowsFilesystem("hfs+"))
	assert.True(t, cfg.AllowsFilesystem("APFS")) // comparison ignores case
	assert.False(t, cfg.AllowsFilesystem("nfs"))
	assert.False(t, cfg.AllowsFilesystem("smbfs"))
	assert.False(t, cfg.AllowsFilesystem(""))
}

func TestExcludesPath(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.ExcludesPath("/System/Volumes/VM"))
	assert.True(t, cfg.ExcludesPath("/Volumes/.timemachine/backup"))
	assert.False(t, cfg.ExcludesPath("/"))
	assert.False(t, cfg.ExcludesPath("/Volumes/Data"))
	assert.False(t, cfg.ExcludesPath("/SystemData")) // prefix must match the subtree
}
