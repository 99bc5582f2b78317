// Package os wraps the operating system facilities the report depends on
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// MountEntry is one parsed line of mount(8) output
type MountEntry struct {
	Device    string
	MountPath string
	FSType    string
}

// mountLineRE matches "<device> on <mountpoint> (<fstype>, ...)". The mount
// point may itself contain spaces, up to the opening parenthesis; the
// filesystem type is the first comma-delimited token inside it.
var mountLineRE = regexp.MustCompile(`^(\S+)\s+on\s+(.+?)\s+\(([^,)]+)`)

// ParseMountLine extracts (device, mount path, filesystem type) from one
// line of mount(8) output. The type is lower-cased. Lines that do not match
// the grammar report ok=false and are meant to be skipped.
func ParseMountLine(line string) (MountEntry, bool) {
	m := mountLineRE.FindStringSubmatch(line)
	if m == nil {
		return MountEntry{}, false
	}
	return MountEntry{
		Device:    m[1],
		MountPath: m[2],
		FSType:    strings.ToLower(strings.TrimSpace(m[3])),
	}, true
}

// ListMounts runs the system mount utility and parses its output in the
// order the OS reports it. An error means the utility could not be executed
// at all; lines that do not match the mount grammar are skipped silently.
func ListMounts(prims SystemPrimitives) ([]MountEntry, error) {
	output, err := prims.CommandOutput("/sbin/mount")
	if err != nil {
		// Not every system installs mount under /sbin
		output, err = prims.CommandOutput("mount")
		if err != nil {
			return nil, fmt.Errorf("listing mounts: %w", err)
		}
	}

	var entries []MountEntry
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if entry, ok := ParseMountLine(scanner.Text()); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
