// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package roots

import "testing"

func TestUnescapeMount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/mnt/data", "/mnt/data"},
		{`/mnt/my\040drive`, "/mnt/my drive"},
		{`/mnt/tab\011here`, "/mnt/tab\there"},
		{`/mnt/a\040b\040c`, "/mnt/a b c"},
		// Incomplete or non-octal escapes pass through untouched.
		{`/mnt/trail\04`, `/mnt/trail\04`},
		{`/mnt/not\0x9octal`, `/mnt/not\0x9octal`},
	}
	for _, tc := range cases {
		if got := unescapeMount(tc.in); got != tc.want {
			t.Errorf("unescapeMount(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
