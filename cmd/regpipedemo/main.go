// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command regpipedemo replays a synthetic register stream through the
// pipeline cache on a noop HAL device and prints cache statistics.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/regpipe"
	"github.com/gogpu/regpipe/backend/native"
	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

const (
	vsHash0, vsCRC = 0x1000, 0xaaaa0001
	psHash0, psCRC = 0x2000, 0xbbbb0002
	csHash0, csCRC = 0x3000, 0xcccc0003
)

const vertexProgram = `
@group(0) @binding({{.Binding 0}}) var<uniform> offset: vec4<f32>;

@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    let x = f32(i32(i) - 1);
    let y = f32(i32(i & 1u) * 2 - 1);
    return vec4<f32>(x, y, 0.0, 1.0) + offset;
}
`

const fragmentProgram = `
@group(0) @binding({{.Binding 0}}) var<uniform> tint: vec4<f32>;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return tint;
}
`

const computeProgram = `
@group(0) @binding({{.Binding 0}}) var<storage, read_write> data: array<u32>;

@compute @workgroup_size({{index .Runtime.CS.WorkgroupSize 0}})
fn cs_main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] + 1u;
}
`

// registers is a RegisterSource over a single shadow register set.
type registers struct {
	r regs.Regs
}

func (s *registers) Registers() *regs.Regs { return &s.r }

// wgslTranslator stands in for a bytecode translator: it maps each stage
// to a fixed WGSL program with one uniform or storage binding.
type wgslTranslator struct{}

func (wgslTranslator) Translate(_ []uint32, info *shader.Info, _ *shader.RuntimeInfo, _ shader.Profile) (*shader.IR, error) {
	ir := &shader.IR{Stage: info.Stage, Resources: 1}
	switch info.Stage {
	case shader.StageVertex:
		ir.Source, ir.EntryPoint = vertexProgram, native.VertexEntryPoint
	case shader.StageFragment:
		ir.Source, ir.EntryPoint = fragmentProgram, native.FragmentEntryPoint
		info.MRTMask = 0x1
	case shader.StageCompute:
		ir.Source, ir.EntryPoint = computeProgram, native.ComputeEntryPoint
	}
	info.NumBuffers = ir.Resources
	return ir, nil
}

func main() {
	var (
		frames  = flag.Int("frames", 3, "number of frames to replay")
		dumpDir = flag.String("dump", "", "directory for shader dumps")
		deny    = flag.String("deny", "", "comma-separated program hashes to skip")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		regpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var denyList regpipe.DenyList
	if *deny != "" {
		var err error
		if denyList, err = regpipe.ParseDenyList(strings.Split(*deny, ",")); err != nil {
			log.Fatalf("Invalid deny list: %v", err)
		}
	}

	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		log.Fatalf("Failed to create instance: %v", err)
	}
	defer instance.Destroy()
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		log.Fatal("No adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer openDev.Device.Destroy()

	compiler, err := native.NewModuleCompiler(openDev.Device)
	if err != nil {
		log.Fatalf("Failed to create module compiler: %v", err)
	}
	defer compiler.Destroy()
	builder, err := native.NewPipelineBuilder(compiler)
	if err != nil {
		log.Fatalf("Failed to create pipeline builder: %v", err)
	}
	defer builder.Destroy()

	src := &registers{}
	cache, err := regpipe.New(src, wgslTranslator{}, native.NewNagaEmitter(), compiler,
		regpipe.WithPipelineBuilder(builder),
		regpipe.WithDenyList(denyList),
		regpipe.WithShaderDump(*dumpDir),
	)
	if err != nil {
		log.Fatalf("Failed to create pipeline cache: %v", err)
	}

	for range *frames {
		replayFrame(cache, &src.r)
	}

	st := cache.Stats()
	log.Printf("graphics: %d hits, %d misses, %d pipelines", st.GraphicsHits, st.GraphicsMisses, cache.GraphicsPipelineCount())
	log.Printf("compute: %d hits, %d misses, %d pipelines", st.ComputeHits, st.ComputeMisses, cache.ComputePipelineCount())
	log.Printf("programs: %d, permutations: %d, compilations: %d, modules: %d",
		st.Programs, st.Permutations, st.Compilations, compiler.Len())
}

// replayFrame issues a small fixed set of draws and one dispatch.
func replayFrame(cache *regpipe.PipelineCache, r *regs.Regs) {
	resetDraw(r)
	draw(cache, "opaque")

	// Same state with alpha blending on target 0.
	r.BlendControl[0] = regs.BlendControl{
		ColorSrcFactor: regs.BlendSrcAlpha,
		ColorDstFactor: regs.BlendOneMinusSrcAlpha,
		ColorCombFunc:  regs.BlendFuncDstPlusSrc,
		Enable:         true,
	}
	draw(cache, "blended")

	// Depth-tested with a depth clear in flight: depth writes are masked.
	r.DepthBuffer = regs.DepthBuffer{ZFormat: regs.ZFormat32Float}
	r.DepthControl = regs.DepthControl{DepthEnable: true, DepthWriteEnable: true, DepthFunc: regs.CompareLess}
	r.DepthRenderControl.DepthClearEnable = true
	draw(cache, "depth clear")

	// Fast-clear elimination is a helper pass and never gets a pipeline.
	r.ColorControl.Mode = regs.ModeEliminateFastClear
	draw(cache, "fast clear elimination")

	r.CsProgram = regs.ComputeProgram{
		ShaderProgram: regs.ShaderProgram{
			Address: 0x300000,
			Code:    regs.BuildProgramCode([]uint32{0xBF810000}, csHash0, csCRC),
		},
		NumThreadX: 64, NumThreadY: 1, NumThreadZ: 1,
	}
	p, err := cache.GetComputePipeline()
	if err != nil {
		log.Fatalf("Dispatch failed: %v", err)
	}
	if p == nil {
		log.Print("dispatch skipped")
	}
}

func resetDraw(r *regs.Regs) {
	*r = regs.Regs{
		PrimitiveType: regs.PrimitiveTriangleList,
		ColorControl:  regs.ColorControl{Mode: regs.ModeNormal},
		VsProgram: regs.ShaderProgram{
			Address: 0x100000,
			Code:    regs.BuildProgramCode([]uint32{0xBF810000}, vsHash0, vsCRC),
		},
		PsProgram: regs.ShaderProgram{
			Address: 0x200000,
			Code:    regs.BuildProgramCode([]uint32{0xBF810000}, psHash0, psCRC),
		},
	}
	r.ColorBuffers[0] = regs.ColorBuffer{
		Base: 0x800000,
		Info: regs.ColorBufferInfo{Format: regs.DataFormat8_8_8_8, NumberType: regs.NumberUnorm},
	}
	r.ColorTargetMask.SetMask(0, 0xF)
	r.ColorShaderMask.SetMask(0, 0xF)
}

func draw(cache *regpipe.PipelineCache, name string) {
	p, err := cache.GetGraphicsPipeline()
	if err != nil {
		log.Fatalf("Draw %q failed: %v", name, err)
	}
	if p == nil {
		log.Printf("draw %q skipped", name)
		return
	}
	log.Printf("draw %q -> pipeline %d (%#016x)", name, p.ID(), p.Key().Hash())
}
