// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"errors"
	"fmt"

	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

// MaxShaderStages is the number of graphics stage slots in a key.
const MaxShaderStages = regs.MaxShaderStages

// Constructor errors.
var (
	// ErrNilRegisters is returned when creating a cache without a register source.
	ErrNilRegisters = errors.New("regpipe: register source is nil")

	// ErrNilTranslator is returned when creating a cache without a translator.
	ErrNilTranslator = errors.New("regpipe: translator is nil")

	// ErrNilEmitter is returned when creating a cache without an emitter.
	ErrNilEmitter = errors.New("regpipe: emitter is nil")

	// ErrNilCompiler is returned when creating a cache without a module compiler.
	ErrNilCompiler = errors.New("regpipe: module compiler is nil")
)

// RegisterSource exposes the shadow register state. The cache only reads
// the returned registers.
type RegisterSource interface {
	Registers() *regs.Regs
}

// VideoOutQuery reports whether a color buffer aliases a surface owned by
// the video output.
type VideoOutQuery interface {
	IsVideoOutSurface(cb *regs.ColorBuffer) bool
}

// Translator lowers program bytecode into IR, filling in info as it
// discovers resource usage and color outputs.
type Translator interface {
	Translate(code []uint32, info *shader.Info, rt *shader.RuntimeInfo, profile shader.Profile) (*shader.IR, error)
}

// Emitter generates backend code from IR. Resource bindings are numbered
// starting at *binding, which is advanced past the bindings consumed.
type Emitter interface {
	Emit(profile shader.Profile, rt *shader.RuntimeInfo, ir *shader.IR, binding *uint32) ([]uint32, error)
}

// ModuleCompiler turns backend code into a module handle. The label is a
// debug name for the module.
type ModuleCompiler interface {
	CompileModule(code []uint32, label string) (shader.ModuleID, error)
}

// Stats reports cache activity.
type Stats struct {
	GraphicsHits   uint64
	GraphicsMisses uint64
	ComputeHits    uint64
	ComputeMisses  uint64
	Compilations   uint64
	Programs       int
	Permutations   int
}

// PipelineCache resolves register state into pipeline objects.
//
// For every draw it builds a GraphicsPipelineKey from the registers,
// compiling programs it has not seen under the current specialization, and
// returns the pipeline cached for that key, creating it on first use.
// Programs, permutations and pipelines are kept for the lifetime of the
// cache.
//
// Thread Safety:
// PipelineCache is not safe for concurrent use. All calls must come from
// the goroutine driving command processing; cache misses compile
// synchronously on that goroutine.
type PipelineCache struct {
	regs       RegisterSource
	translator Translator
	emitter    Emitter
	compiler   ModuleCompiler
	opts       options

	// Scratch state of the key build in progress.
	graphicsKey   GraphicsPipelineKey
	computeKey    uint64
	infos         [MaxShaderStages]*shader.Info
	modules       [MaxShaderStages]shader.ModuleID
	entryPoints   [MaxShaderStages]string
	candidates    [regs.NumColorBuffers]colorCandidate
	numCandidates int
	computeStage  StageModule

	programs          map[uint64]*Program
	graphicsPipelines map[GraphicsPipelineKey]*GraphicsPipeline
	computePipelines  map[uint64]*ComputePipeline

	tessMissingLogged bool
	nextPipelineID    uint64
	stats             Stats
}

// New creates a pipeline cache reading registers from src and compiling
// programs through the given collaborators.
func New(src RegisterSource, tr Translator, em Emitter, mc ModuleCompiler, opts ...Option) (*PipelineCache, error) {
	switch {
	case src == nil:
		return nil, ErrNilRegisters
	case tr == nil:
		return nil, ErrNilTranslator
	case em == nil:
		return nil, ErrNilEmitter
	case mc == nil:
		return nil, ErrNilCompiler
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &PipelineCache{
		regs:              src,
		translator:        tr,
		emitter:           em,
		compiler:          mc,
		opts:              o,
		programs:          make(map[uint64]*Program),
		graphicsPipelines: make(map[GraphicsPipelineKey]*GraphicsPipeline),
		computePipelines:  make(map[uint64]*ComputePipeline),
	}, nil
}

// GetGraphicsPipeline returns the pipeline for the current register state.
//
// A nil pipeline with a nil error means the draw must be skipped: the
// state is ineligible (tessellation, helper passes, deny-listed programs)
// and no cache was consulted. An error means a collaborator failed; no
// pipeline was cached for the state.
func (c *PipelineCache) GetGraphicsPipeline() (*GraphicsPipeline, error) {
	if shouldSkipDraw(c.regs.Registers()) {
		return nil, nil
	}
	ok, err := c.refreshGraphicsKey()
	if err != nil || !ok {
		return nil, err
	}

	if p, found := c.graphicsPipelines[c.graphicsKey]; found {
		c.stats.GraphicsHits++
		return p, nil
	}

	p, err := c.createGraphicsPipeline()
	if err != nil {
		return nil, fmt.Errorf("regpipe: create graphics pipeline: %w", err)
	}
	c.graphicsPipelines[c.graphicsKey] = p
	c.stats.GraphicsMisses++
	Logger().Debug("regpipe: graphics pipeline created",
		"id", p.id, "key", fmt.Sprintf("%#016x", c.graphicsKey.Hash()))
	return p, nil
}

// GetComputePipeline returns the pipeline for the current compute program.
// The nil/error contract matches GetGraphicsPipeline.
func (c *PipelineCache) GetComputePipeline() (*ComputePipeline, error) {
	ok, err := c.refreshComputeKey()
	if err != nil || !ok {
		return nil, err
	}

	if p, found := c.computePipelines[c.computeKey]; found {
		c.stats.ComputeHits++
		return p, nil
	}

	p, err := c.createComputePipeline()
	if err != nil {
		return nil, fmt.Errorf("regpipe: create compute pipeline: %w", err)
	}
	c.computePipelines[c.computeKey] = p
	c.stats.ComputeMisses++
	Logger().Debug("regpipe: compute pipeline created",
		"id", p.id, "key", fmt.Sprintf("%#016x", c.computeKey))
	return p, nil
}

// Stats returns cache statistics.
func (c *PipelineCache) Stats() Stats {
	s := c.stats
	s.Programs = len(c.programs)
	for _, p := range c.programs {
		s.Permutations += len(p.Permutations)
	}
	return s
}

// GraphicsPipelineCount returns the number of cached graphics pipelines.
func (c *PipelineCache) GraphicsPipelineCount() int {
	return len(c.graphicsPipelines)
}

// ComputePipelineCount returns the number of cached compute pipelines.
func (c *PipelineCache) ComputePipelineCount() int {
	return len(c.computePipelines)
}

// Program returns the cached program with the given content hash.
func (c *PipelineCache) Program(hash uint64) (*Program, bool) {
	p, ok := c.programs[hash]
	return p, ok
}
