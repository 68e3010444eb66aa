// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

var _ gpucontext.DeviceProvider = (*mockProvider)(nil)

// mockHALProvider also exposes a HAL device.
type mockHALProvider struct {
	mockProvider
	device any
}

func (m *mockHALProvider) HalDevice() any { return m.device }

func TestHALDevice(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	got, err := HALDevice(&mockHALProvider{device: device})
	if err != nil {
		t.Fatalf("HALDevice() error = %v", err)
	}
	if got != device {
		t.Error("HALDevice() returned a different device")
	}
}

func TestHALDeviceErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     error
	}{
		{"nil provider", nil, ErrNilDevice},
		{"no HAL access", &mockProvider{}, ErrNoHALDevice},
		{"wrong type", &mockHALProvider{device: "device"}, ErrNoHALDevice},
		{"nil HAL device", &mockHALProvider{device: hal.Device(nil)}, ErrNoHALDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := HALDevice(tt.provider); !errors.Is(err, tt.want) {
				t.Errorf("HALDevice() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewPipelineBuilderFromProvider(t *testing.T) {
	device, cleanup := createNoopDevice(t)
	defer cleanup()

	compiler, builder, err := NewPipelineBuilderFromProvider(&mockHALProvider{device: device})
	if err != nil {
		t.Fatalf("NewPipelineBuilderFromProvider() error = %v", err)
	}
	defer compiler.Destroy()
	defer builder.Destroy()
	if compiler.Device() != device {
		t.Error("compiler is not on the provider device")
	}
}
