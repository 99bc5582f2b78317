//go:build unix

// Package os wraps the operating system facilities the report depends on
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "golang.org/x/sys/unix"

// StatFS queries the filesystem's block statistics via statfs(2)
func (d *Default) StatFS(path string) (BlockStat, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return BlockStat{}, err
	}
	return BlockStat{
		BlockSize:   uint64(stat.Bsize),
		Blocks:      uint64(stat.Blocks),
		BlocksFree:  uint64(stat.Bfree),
		BlocksAvail: uint64(stat.Bavail),
	}, nil
}
