// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build darwin

package opener

import "os/exec"

func openPath(path string) error {
	return exec.Command("open", path).Start()
}
