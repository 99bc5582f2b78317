//nolint:revive // Package name 'os' is intentional, in separate namespace 'internal/os'
package os

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const diskutilPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>DeviceIdentifier</key>
	<string>disk3s1</string>
	<key>VolumeName</key>
	<string>Macintosh HD</string>
	<key>WholeDisk</key>
	<false/>
</dict>
</plist>
`

const diskutilPlistNoName = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>DeviceIdentifier</key>
	<string>disk3s1</string>
</dict>
</plist>
`

func TestLabelResolver(t *testing.T) {
	prims := &fakePrimitives{outputs: map[string][]byte{
		"/usr/sbin/diskutil info -plist /dev/disk3s1": []byte(diskutilPlist),
	}}

	r := NewLabelResolver(prims)
	assert.Equal(t, "Macintosh HD", r.Label("/dev/disk3s1"))
}

func TestLabelResolverToleratesFailure(t *testing.T) {
	tests := []struct {
		name    string
		outputs map[string][]byte
	}{
		{
			name:    "diskutil missing",
			outputs: map[string][]byte{},
		},
		{
			name: "malformed output",
			outputs: map[string][]byte{
				"/usr/sbin/diskutil info -plist /dev/disk3s1": []byte("not a plist at all"),
			},
		},
		{
			name: "volume name absent",
			outputs: map[string][]byte{
				"/usr/sbin/diskutil info -plist /dev/disk3s1": []byte(diskutilPlistNoName),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLabelResolver(&fakePrimitives{outputs: tt.outputs})
			assert.Equal(t, "", r.Label("/dev/disk3s1"))
		})
	}
}

func TestLabelResolverCachesPerDevice(t *testing.T) {
	prims := &fakePrimitives{outputs: map[string][]byte{
		"/usr/sbin/diskutil info -plist /dev/disk3s1": []byte(diskutilPlist),
	}}

	r := NewLabelResolver(prims)
	assert.Equal(t, "Macintosh HD", r.Label("/dev/disk3s1"))
	assert.Equal(t, "Macintosh HD", r.Label("/dev/disk3s1"))
	assert.Len(t, prims.calls, 1)

	// Failed lookups are cached too
	assert.Equal(t, "", r.Label("/dev/disk9"))
	assert.Equal(t, "", r.Label("/dev/disk9"))
	assert.Len(t, prims.calls, 2)
}
