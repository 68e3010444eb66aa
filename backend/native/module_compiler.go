// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/regpipe/shader"
)

// ModuleCompiler creates HAL shader modules from SPIR-V and tracks them by
// the IDs it hands to the pipeline cache.
//
// Thread Safety:
// ModuleCompiler is safe for concurrent use.
type ModuleCompiler struct {
	device hal.Device

	mu      sync.RWMutex
	modules map[shader.ModuleID]*compiledModule
	nextID  shader.ModuleID
}

type compiledModule struct {
	label string
	raw   hal.ShaderModule
}

// NewModuleCompiler creates a compiler for device.
func NewModuleCompiler(device hal.Device) (*ModuleCompiler, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &ModuleCompiler{
		device:  device,
		modules: make(map[shader.ModuleID]*compiledModule),
	}, nil
}

// Device returns the device modules are created on.
func (c *ModuleCompiler) Device() hal.Device {
	return c.device
}

// CompileModule creates a shader module from SPIR-V words.
func (c *ModuleCompiler) CompileModule(code []uint32, label string) (shader.ModuleID, error) {
	raw, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return shader.InvalidModule, fmt.Errorf("native: create shader module %s: %w", label, err)
	}

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.modules[id] = &compiledModule{label: label, raw: raw}
	c.mu.Unlock()

	slogger().Debug("native: shader module created", "label", label, "id", uint64(id))
	return id, nil
}

// Module returns the HAL module for id.
func (c *ModuleCompiler) Module(id shader.ModuleID) (hal.ShaderModule, error) {
	c.mu.RLock()
	m, ok := c.modules[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModule, uint64(id))
	}
	return m.raw, nil
}

// Label returns the debug label of module id.
func (c *ModuleCompiler) Label(id shader.ModuleID) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.modules[id]; ok {
		return m.label
	}
	return ""
}

// Len returns the number of live modules.
func (c *ModuleCompiler) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.modules)
}

// Destroy releases every module. IDs issued before are invalid afterwards.
func (c *ModuleCompiler) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, m := range c.modules {
		if m.raw != nil {
			c.device.DestroyShaderModule(m.raw)
		}
		delete(c.modules, id)
	}
}
