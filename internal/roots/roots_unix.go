// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package roots

import (
	"bufio"
	"os"
	"strings"
)

// realFilesystems are mount types worth indexing; pseudo and network
// filesystems are skipped for the same reason the finder skips CD and
// network drives on Windows.
var realFilesystems = map[string]struct{}{
	"ext2": {}, "ext3": {}, "ext4": {},
	"xfs": {}, "btrfs": {}, "zfs": {}, "f2fs": {},
	"vfat": {}, "exfat": {}, "ntfs": {}, "ntfs3": {},
	"hfsplus": {}, "apfs": {},
}

// listVolumes returns the mount points of real filesystems from /proc/mounts.
// On systems without /proc (e.g. macOS) it falls back to the filesystem root.
func listVolumes() ([]string, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return []string{"/"}, nil
	}
	defer f.Close()

	var vols []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// device mountpoint fstype options ...
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		mount, fstype := fields[1], fields[2]
		if _, ok := realFilesystems[fstype]; !ok {
			continue
		}
		if _, dup := seen[mount]; dup {
			continue
		}
		seen[mount] = struct{}{}
		vols = append(vols, unescapeMount(mount))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(vols) == 0 {
		vols = []string{"/"}
	}
	return vols, nil
}

// unescapeMount decodes the octal escapes /proc/mounts uses for spaces and
// other special characters (e.g. "\040" for a space).
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			var c byte
			octal := true
			for j := 1; j <= 3; j++ {
				d := s[i+j]
				if d < '0' || d > '7' {
					octal = false
					break
				}
				c = c<<3 | (d - '0')
			}
			if octal {
				b.WriteByte(c)
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
