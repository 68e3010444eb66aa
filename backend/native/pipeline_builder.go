// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/regpipe"
	"github.com/gogpu/regpipe/regs"
)

// Default entry points, used when a stage module names none.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
	ComputeEntryPoint  = "cs_main"
)

// PipelineBuilder creates HAL pipelines for regpipe keys. Module IDs in
// the stage tables are resolved through the ModuleCompiler that issued
// them.
//
// Thread Safety:
// PipelineBuilder is safe for concurrent use.
type PipelineBuilder struct {
	device   hal.Device
	compiler *ModuleCompiler

	mu     sync.Mutex
	layout hal.PipelineLayout
	render []hal.RenderPipeline
	comp   []hal.ComputePipeline
}

var _ regpipe.PipelineBuilder = (*PipelineBuilder)(nil)

// NewPipelineBuilder creates a builder on the compiler's device.
func NewPipelineBuilder(compiler *ModuleCompiler) (*PipelineBuilder, error) {
	if compiler == nil || compiler.Device() == nil {
		return nil, ErrNilDevice
	}
	return &PipelineBuilder{device: compiler.Device(), compiler: compiler}, nil
}

// pipelineLayout returns the layout shared by all pipelines. Resources are
// bound through descriptor heaps the emitted programs index, so the layout
// declares no bind groups.
func (b *PipelineBuilder) pipelineLayout() (hal.PipelineLayout, error) {
	if b.layout != nil {
		return b.layout, nil
	}
	layout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "regpipe_pipeline_layout",
	})
	if err != nil {
		return nil, fmt.Errorf("native: create pipeline layout: %w", err)
	}
	b.layout = layout
	return layout, nil
}

// RenderPipelineDescriptor converts a key and stage table to a HAL
// descriptor. The layout is left unset.
func (b *PipelineBuilder) RenderPipelineDescriptor(key *regpipe.GraphicsPipelineKey,
	stages [regpipe.MaxShaderStages]regpipe.StageModule) (*hal.RenderPipelineDescriptor, error) {
	vs := stages[regs.StageSlotVertex]
	if !vs.Valid() {
		return nil, fmt.Errorf("%w: vertex", ErrMissingStage)
	}
	vsModule, err := b.compiler.Module(vs.Module)
	if err != nil {
		return nil, err
	}

	desc := &hal.RenderPipelineDescriptor{
		Label: fmt.Sprintf("graphics_%#016x", key.Hash()),
		Vertex: hal.VertexState{
			Module:     vsModule,
			EntryPoint: entryPoint(vs, VertexEntryPoint),
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  convertTopology(key.PrimType),
			FrontFace: convertFrontFace(key.FrontFace),
			CullMode:  convertCullMode(key.CullMode),
		},
		Multisample: gputypes.MultisampleState{
			Count: key.NumSamples,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: convertDepthStencil(key),
	}
	if key.CullMode == regs.CullFrontAndBack {
		desc.Multisample.Mask = 0
	}

	if fs := stages[regs.StageSlotFragment]; fs.Valid() {
		fsModule, err := b.compiler.Module(fs.Module)
		if err != nil {
			return nil, err
		}
		targets := make([]gputypes.ColorTargetState, 0, key.NumColorAttachments)
		for i := range key.NumColorAttachments {
			targets = append(targets, gputypes.ColorTargetState{
				Format:    key.ColorFormats[i],
				Blend:     convertBlend(&key.BlendControls[i]),
				WriteMask: key.WriteMasks[i],
			})
		}
		desc.Fragment = &hal.FragmentState{
			Module:     fsModule,
			EntryPoint: entryPoint(fs, FragmentEntryPoint),
			Targets:    targets,
		}
	}
	return desc, nil
}

// convertDepthStencil returns nil when the key has no depth attachment.
func convertDepthStencil(key *regpipe.GraphicsPipelineKey) *hal.DepthStencilState {
	if key.DepthFormat == gputypes.TextureFormatUndefined {
		return nil
	}
	ds := &key.DepthStencil
	state := &hal.DepthStencilState{
		Format:            key.DepthFormat,
		DepthWriteEnabled: ds.DepthEnable && ds.DepthWriteEnable,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      keepStencilFace(),
		StencilBack:       keepStencilFace(),
	}
	if ds.DepthEnable {
		state.DepthCompare = convertCompare(ds.DepthFunc)
	}
	if ds.StencilEnable {
		st := &key.Stencil
		state.StencilFront = hal.StencilFaceState{
			Compare:     convertCompare(ds.StencilFunc),
			FailOp:      convertStencilOp(st.StencilFail),
			DepthFailOp: convertStencilOp(st.StencilZFail),
			PassOp:      convertStencilOp(st.StencilZPass),
		}
		state.StencilBack = state.StencilFront
		if ds.BackfaceEnable {
			state.StencilBack = hal.StencilFaceState{
				Compare:     convertCompare(ds.StencilFuncBack),
				FailOp:      convertStencilOp(st.StencilFailBack),
				DepthFailOp: convertStencilOp(st.StencilZFailBF),
				PassOp:      convertStencilOp(st.StencilZPassBF),
			}
		}
		state.StencilReadMask = 0xFF
		state.StencilWriteMask = 0xFF
	}
	return state
}

func entryPoint(s regpipe.StageModule, def string) string {
	if s.EntryPoint != "" {
		return s.EntryPoint
	}
	return def
}

func keepStencilFace() hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
}

// BuildGraphicsPipeline creates a render pipeline. The handle is a
// hal.RenderPipeline.
func (b *PipelineBuilder) BuildGraphicsPipeline(key *regpipe.GraphicsPipelineKey,
	stages [regpipe.MaxShaderStages]regpipe.StageModule) (any, error) {
	desc, err := b.RenderPipelineDescriptor(key, stages)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if desc.Layout, err = b.pipelineLayout(); err != nil {
		return nil, err
	}
	pipeline, err := b.device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("native: create render pipeline %s: %w", desc.Label, err)
	}
	b.render = append(b.render, pipeline)
	slogger().Debug("native: render pipeline created", "label", desc.Label,
		"targets", key.NumColorAttachments, "samples", key.NumSamples)
	return pipeline, nil
}

// BuildComputePipeline creates a compute pipeline. The handle is a
// hal.ComputePipeline.
func (b *PipelineBuilder) BuildComputePipeline(key uint64, stage regpipe.StageModule) (any, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: compute", ErrMissingStage)
	}
	module, err := b.compiler.Module(stage.Module)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	layout, err := b.pipelineLayout()
	if err != nil {
		return nil, err
	}
	label := fmt.Sprintf("compute_%#016x", key)
	pipeline, err := b.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  label,
		Layout: layout,
		Compute: hal.ComputeState{
			Module:     module,
			EntryPoint: entryPoint(stage, ComputeEntryPoint),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("native: create compute pipeline %s: %w", label, err)
	}
	b.comp = append(b.comp, pipeline)
	slogger().Debug("native: compute pipeline created", "label", label)
	return pipeline, nil
}

// Destroy releases every pipeline created by the builder and the shared
// layout. Shader modules belong to the ModuleCompiler.
func (b *PipelineBuilder) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.render {
		if p != nil {
			b.device.DestroyRenderPipeline(p)
		}
	}
	for _, p := range b.comp {
		if p != nil {
			b.device.DestroyComputePipeline(p)
		}
	}
	b.render, b.comp = nil, nil
	if b.layout != nil {
		b.device.DestroyPipelineLayout(b.layout)
		b.layout = nil
	}
}
