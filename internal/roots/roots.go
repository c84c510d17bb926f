// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roots enumerates the top-level paths a scan starts from: either a
// single explicit directory, or every fixed/removable volume on the system.
package roots

import (
	"fmt"
	"os"
)

// Enumerate returns the ordered list of roots to index. With allRoots set it
// scans the platform's volumes; otherwise it resolves path (empty means the
// current directory) and verifies it is a directory.
func Enumerate(path string, allRoots bool) ([]string, error) {
	if allRoots {
		vols, err := listVolumes()
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate volumes: %w", err)
		}
		if len(vols) == 0 {
			return nil, fmt.Errorf("no scannable volumes found")
		}
		return vols, nil
	}

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path = cwd
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}
	return []string{path}, nil
}
