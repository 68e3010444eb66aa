// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/regpipe/shader"
)

func TestDumpFileName(t *testing.T) {
	got := dumpFileName(shader.StageVertex, 0xabc, 2, "spv")
	if want := "vs_0x0000000000000abc_2.spv"; got != want {
		t.Errorf("dumpFileName() = %q, want %q", got, want)
	}
}

func TestShaderDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	f := newFixture()
	c := newTestCache(t, f, WithShaderDump(dir))
	mustGraphics(t, c)

	for _, name := range []string{
		dumpFileName(shader.StageFragment, psHash, 0, "bin"),
		dumpFileName(shader.StageFragment, psHash, 0, "spv"),
		dumpFileName(shader.StageVertex, vsHash, 0, "bin"),
		dumpFileName(shader.StageVertex, vsHash, 0, "spv"),
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("dump %s: %v", name, err)
		}
	}

	// The fake emitter produces three words.
	data, err := os.ReadFile(filepath.Join(dir, dumpFileName(shader.StageVertex, vsHash, 0, "spv")))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 12 {
		t.Errorf("spv dump size = %d, want 12", len(data))
	}
}

func TestShaderDumpDisabled(t *testing.T) {
	dir := t.TempDir()
	mustGraphics(t, newTestCache(t, newFixture()))
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dump directory has %d entries, want 0", len(entries))
	}
}
