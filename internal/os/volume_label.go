// Package os wraps the operating system facilities the report depends on
//
//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"howett.net/plist"
)

// diskutilInfo carries the fields read from diskutil info -plist output
type diskutilInfo struct {
	VolumeName string `plist:"VolumeName"`
}

// LabelResolver resolves human-friendly volume names for devices. Results
// are cached per device, so a device mounted at several paths costs a
// single diskutil invocation.
type LabelResolver struct {
	prims SystemPrimitives
	cache map[string]string
}

// NewLabelResolver creates a resolver backed by the given primitives
func NewLabelResolver(prims SystemPrimitives) *LabelResolver {
	return &LabelResolver{
		prims: prims,
		cache: make(map[string]string),
	}
}

// Label returns the volume name for a device. The label is cosmetic: when
// diskutil is unavailable, its output cannot be parsed, or the name field
// is absent, the result is an empty string and never an error.
func (r *LabelResolver) Label(device string) string {
	if label, ok := r.cache[device]; ok {
		return label
	}

	label := ""
	output, err := r.prims.CommandOutput("/usr/sbin/diskutil", "info", "-plist", device)
	if err == nil {
		var info diskutilInfo
		if _, err := plist.Unmarshal(output, &info); err == nil {
			label = info.VolumeName
		}
	}

	r.cache[device] = label
	return label
}
