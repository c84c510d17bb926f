// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package roots

import (
	"golang.org/x/sys/windows"
)

// listVolumes returns the root paths of fixed and removable drives. CD/DVD
// and network drives are skipped for performance, matching the finder's
// "scannable volume" definition.
func listVolumes() ([]string, error) {
	bitmask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}

	var vols []string
	for i := 0; i < 26; i++ {
		if bitmask&(1<<uint(i)) == 0 {
			continue
		}
		root := string(rune('A'+i)) + `:\`

		ptr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		switch windows.GetDriveType(ptr) {
		case windows.DRIVE_FIXED, windows.DRIVE_REMOVABLE:
			vols = append(vols, root)
		}
	}
	return vols, nil
}
