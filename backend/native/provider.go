// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halDeviceProvider is implemented by device providers that expose their
// HAL device, such as a gogpu App.
type halDeviceProvider interface {
	HalDevice() any
}

// HALDevice extracts the HAL device of a provider.
func HALDevice(provider gpucontext.DeviceProvider) (hal.Device, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halDeviceProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return device, nil
}

// NewModuleCompilerFromProvider creates a compiler on the provider's HAL
// device.
func NewModuleCompilerFromProvider(provider gpucontext.DeviceProvider) (*ModuleCompiler, error) {
	device, err := HALDevice(provider)
	if err != nil {
		return nil, err
	}
	return NewModuleCompiler(device)
}

// NewPipelineBuilderFromProvider creates a compiler and a builder sharing
// the provider's HAL device.
func NewPipelineBuilderFromProvider(provider gpucontext.DeviceProvider) (*ModuleCompiler, *PipelineBuilder, error) {
	compiler, err := NewModuleCompilerFromProvider(provider)
	if err != nil {
		return nil, nil, err
	}
	builder, err := NewPipelineBuilder(compiler)
	if err != nil {
		return nil, nil, err
	}
	return compiler, builder, nil
}
