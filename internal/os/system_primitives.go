// Package os wraps the operating system facilities the report depends on
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"io/fs"
	"os"
	"os/exec"
)

// BlockStat holds the raw block counts returned by a filesystem statistics query
type BlockStat struct {
	BlockSize   uint64
	Blocks      uint64
	BlocksFree  uint64
	BlocksAvail uint64
}

// SystemPrimitives defines the low-level OS operations the pipeline uses,
// so tests can substitute fakes returning canned output
type SystemPrimitives interface {
	// CommandOutput runs a command and returns its standard output
	CommandOutput(name string, args ...string) ([]byte, error)
	// OSStat wraps os.Stat
	OSStat(path string) (fs.FileInfo, error)
	// StatFS queries block statistics for a mounted filesystem
	StatFS(path string) (BlockStat, error)
}

// Default implements SystemPrimitives against the live system
type Default struct{}

// NewDefault creates a new Default instance
func NewDefault() *Default {
	return &Default{}
}

// CommandOutput wraps exec.Command followed by Output
func (d *Default) CommandOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// OSStat wraps os.Stat
func (d *Default) OSStat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
