// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package roots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnumerateExplicitPath(t *testing.T) {
	dir := t.TempDir()

	got, err := Enumerate(dir, false)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(got) != 1 || got[0] != dir {
		t.Errorf("got %v, want [%s]", got, dir)
	}
}

func TestEnumerateEmptyPathUsesCwd(t *testing.T) {
	got, err := Enumerate("", false)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	cwd, _ := os.Getwd()
	if len(got) != 1 || got[0] != cwd {
		t.Errorf("got %v, want [%s]", got, cwd)
	}
}

func TestEnumerateMissingPath(t *testing.T) {
	if _, err := Enumerate(filepath.Join(t.TempDir(), "absent"), false); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestEnumerateRejectsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Enumerate(f, false); err == nil {
		t.Error("expected error for non-directory path")
	}
}

func TestEnumerateAllRootsNeverEmpty(t *testing.T) {
	got, err := Enumerate("", true)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(got) == 0 {
		t.Error("volume enumeration returned no roots")
	}
}
