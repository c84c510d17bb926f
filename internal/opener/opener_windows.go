// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package opener

import "os/exec"

// openPath uses the shell's "start" verb, the equivalent of double-clicking
// the file in Explorer. The empty first argument is the window title slot.
func openPath(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}
