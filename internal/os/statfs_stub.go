//go:build !unix

// Package os wraps the operating system facilities the report depends on
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import "errors"

// StatFS has no implementation off unix platforms
func (d *Default) StatFS(path string) (BlockStat, error) {
	return BlockStat{}, errors.New("statfs is not supported on this platform")
}
