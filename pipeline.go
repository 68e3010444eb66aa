// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

// StageModule is the compiled module bound to a stage slot. Info is nil
// and Module is shader.InvalidModule when the slot is absent.
type StageModule struct {
	Info   *shader.Info
	Module shader.ModuleID

	// EntryPoint is the entry function of the module. Builders fall back
	// to their default for the stage when it is empty.
	EntryPoint string
}

// Valid reports whether the slot holds a module.
func (s StageModule) Valid() bool {
	return s.Info != nil && s.Module != shader.InvalidModule
}

// PipelineBuilder creates backend pipeline objects. The returned handle is
// opaque to the cache and stored on the pipeline.
type PipelineBuilder interface {
	BuildGraphicsPipeline(key *GraphicsPipelineKey, stages [MaxShaderStages]StageModule) (any, error)
	BuildComputePipeline(key uint64, stage StageModule) (any, error)
}

// GraphicsPipeline is a cached graphics pipeline.
type GraphicsPipeline struct {
	id     uint64
	key    GraphicsPipelineKey
	stages [MaxShaderStages]StageModule
	handle any
}

// ID returns the pipeline's unique identifier within its cache.
func (p *GraphicsPipeline) ID() uint64 { return p.id }

// Key returns the key the pipeline was created for.
func (p *GraphicsPipeline) Key() *GraphicsPipelineKey { return &p.key }

// Stage returns the module bound to a graphics stage slot.
func (p *GraphicsPipeline) Stage(slot int) StageModule {
	if slot < 0 || slot >= MaxShaderStages {
		return StageModule{}
	}
	return p.stages[slot]
}

// Handle returns the backend pipeline object, or nil when the cache has no
// builder.
func (p *GraphicsPipeline) Handle() any { return p.handle }

// ComputePipeline is a cached compute pipeline.
type ComputePipeline struct {
	id     uint64
	key    uint64
	stage  StageModule
	handle any
}

// ID returns the pipeline's unique identifier within its cache.
func (p *ComputePipeline) ID() uint64 { return p.id }

// Key returns the combined program hash the pipeline was created for.
func (p *ComputePipeline) Key() uint64 { return p.key }

// Stage returns the compute module.
func (p *ComputePipeline) Stage() StageModule { return p.stage }

// Handle returns the backend pipeline object, or nil when the cache has no
// builder.
func (p *ComputePipeline) Handle() any { return p.handle }

// createGraphicsPipeline creates a pipeline for the current key and stage
// table. It is called on a cache miss.
func (c *PipelineCache) createGraphicsPipeline() (*GraphicsPipeline, error) {
	var stages [MaxShaderStages]StageModule
	for i := range stages {
		stages[i] = StageModule{Info: c.infos[i], Module: c.modules[i], EntryPoint: c.entryPoints[i]}
	}

	var handle any
	if b := c.opts.builder; b != nil {
		h, err := b.BuildGraphicsPipeline(&c.graphicsKey, stages)
		if err != nil {
			return nil, err
		}
		handle = h
	}

	c.nextPipelineID++
	return &GraphicsPipeline{
		id:     c.nextPipelineID,
		key:    c.graphicsKey,
		stages: stages,
		handle: handle,
	}, nil
}

// createComputePipeline creates a pipeline for the current compute key.
func (c *PipelineCache) createComputePipeline() (*ComputePipeline, error) {
	var handle any
	if b := c.opts.builder; b != nil {
		h, err := b.BuildComputePipeline(c.computeKey, c.computeStage)
		if err != nil {
			return nil, err
		}
		handle = h
	}

	c.nextPipelineID++
	return &ComputePipeline{
		id:     c.nextPipelineID,
		key:    c.computeKey,
		stage:  c.computeStage,
		handle: handle,
	}, nil
}

// refreshComputeKey rebuilds c.computeKey from the compute program
// registers. It reports false when the dispatch must be skipped.
func (c *PipelineCache) refreshComputeKey() (bool, error) {
	c.computeKey = 0
	c.computeStage = StageModule{}

	cs := &c.regs.Registers().CsProgram
	if !cs.Bound() {
		return false, nil
	}
	bininfo := regs.GetBinaryInfo(&cs.ShaderProgram)
	if !bininfo.Valid() {
		Logger().Warn("regpipe: invalid binary info structure", "stage", shader.StageCompute)
		return false, nil
	}
	params := regs.GetParams(&cs.ShaderProgram)
	if c.shouldSkipShader(params.Hash, "compute") {
		return false, nil
	}

	var binding uint32
	res, err := c.getProgram(shader.StageCompute, params, &binding)
	if err != nil {
		return false, err
	}
	c.computeStage = StageModule{Info: res.Info, Module: res.Module, EntryPoint: res.EntryPoint}
	c.computeKey = res.Hash
	return true, nil
}
