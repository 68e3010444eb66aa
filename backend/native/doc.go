// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native implements the regpipe collaborators on top of gogpu.
//
// NagaEmitter renders WGSL program text with the resource bindings assigned
// to a permutation and compiles it to SPIR-V with naga. ModuleCompiler turns
// SPIR-V into HAL shader modules and hands out the opaque module IDs the
// cache stores in its keys. PipelineBuilder converts a GraphicsPipelineKey
// into a HAL render pipeline descriptor.
//
// Collaborators can be created from a hal.Device directly or from a
// gpucontext.DeviceProvider that exposes its HAL device:
//
//	compiler, builder, err := native.NewPipelineBuilderFromProvider(provider)
package native
