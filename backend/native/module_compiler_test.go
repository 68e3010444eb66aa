// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/regpipe/shader"
)

func TestNewModuleCompilerNilDevice(t *testing.T) {
	if _, err := NewModuleCompiler(nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewModuleCompiler(nil) error = %v, want %v", err, ErrNilDevice)
	}
}

func TestModuleCompiler(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	c, err := NewModuleCompiler(device)
	if err != nil {
		t.Fatalf("NewModuleCompiler() error = %v", err)
	}

	id1, err := c.CompileModule(spirvStub, "vs_0x1_0")
	if err != nil {
		t.Fatalf("CompileModule() error = %v", err)
	}
	id2, err := c.CompileModule(spirvStub, "fs_0x2_0")
	if err != nil {
		t.Fatalf("CompileModule() error = %v", err)
	}
	if id1 == shader.InvalidModule || id1 == id2 {
		t.Errorf("IDs = %d, %d, want distinct valid IDs", id1, id2)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.Label(id2); got != "fs_0x2_0" {
		t.Errorf("Label() = %q, want fs_0x2_0", got)
	}
	if _, err := c.Module(id1); err != nil {
		t.Errorf("Module(%d) error = %v", id1, err)
	}
	if _, err := c.Module(99); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("Module(99) error = %v, want %v", err, ErrUnknownModule)
	}

	c.Destroy()
	if c.Len() != 0 {
		t.Errorf("Len() after Destroy = %d, want 0", c.Len())
	}
	if _, err := c.Module(id1); !errors.Is(err, ErrUnknownModule) {
		t.Error("module still resolvable after Destroy")
	}
}
