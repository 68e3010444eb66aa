// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"slices"
	"testing"

	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

func TestGatherVertexOutputs(t *testing.T) {
	none := shader.VsOutputNone
	tests := []struct {
		name string
		ctl  regs.VsOutputControl
		want []shader.VsOutputMap
	}{
		{"nothing exported", regs.VsOutputControl{}, nil},
		{"point size only", regs.VsOutputControl{UseVtxPointSize: true},
			[]shader.VsOutputMap{{shader.VsOutputPointSprite, none, none, none}}},
		{"edge flag wins over cut flag", regs.VsOutputControl{UseVtxEdgeFlag: true, UseVtxGsCutFlag: true},
			[]shader.VsOutputMap{{none, shader.VsOutputEdgeFlag, none, none}}},
		{"cut flag", regs.VsOutputControl{UseVtxGsCutFlag: true},
			[]shader.VsOutputMap{{none, shader.VsOutputGsCutFlag, none, none}}},
		{"kill flag wins over render target index", regs.VsOutputControl{UseVtxKillFlag: true, UseVtxRenderTargetIdx: true},
			[]shader.VsOutputMap{{none, none, shader.VsOutputKillFlag, none}}},
		{"render target and viewport index", regs.VsOutputControl{UseVtxRenderTargetIdx: true, UseVtxViewportIdx: true},
			[]shader.VsOutputMap{{none, none, shader.VsOutputGsMrtIndex, shader.VsOutputGsVpIndex}}},
		{"clip wins over cull", regs.VsOutputControl{ClipDistanceEnable: 0x01, CullDistanceEnable: 0x03},
			[]shader.VsOutputMap{{shader.VsOutputClipDist0, shader.VsOutputCullDist1, none, none}}},
		{"second distance group only", regs.VsOutputControl{CullDistanceEnable: 0x80},
			[]shader.VsOutputMap{{none, none, none, shader.VsOutputCullDist7}}},
		{"all groups", regs.VsOutputControl{UseVtxPointSize: true, ClipDistanceEnable: 0x11},
			[]shader.VsOutputMap{
				{shader.VsOutputPointSprite, none, none, none},
				{shader.VsOutputClipDist0, none, none, none},
				{shader.VsOutputClipDist4, none, none, none},
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gatherVertexOutputs(tt.ctl)
			if !slices.Equal(got, tt.want) {
				t.Errorf("gatherVertexOutputs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildRuntimeInfoVertex(t *testing.T) {
	tests := []struct {
		name      string
		clipCtl   bool
		clipSpace regs.ClipSpace
		emulate   bool
	}{
		{"native clip control", true, regs.ClipSpaceMinusWToW, false},
		{"emulated -w..w", false, regs.ClipSpaceMinusWToW, true},
		{"0..w needs no emulation", false, regs.ClipSpaceZeroToW, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.regs.ClipperControl.ClipSpace = tt.clipSpace
			c := newTestCache(t, f, WithDepthClipControl(tt.clipCtl))

			rt := c.buildRuntimeInfo(shader.StageVertex)
			if rt.VS.EmulateDepthNegativeOneToOne != tt.emulate {
				t.Errorf("EmulateDepthNegativeOneToOne = %v, want %v", rt.VS.EmulateDepthNegativeOneToOne, tt.emulate)
			}
			if rt.NumUserData != 2 || rt.NumInputVgprs != 1 || rt.NumAllocatedVgprs != 16 {
				t.Errorf("counts = %d/%d/%d, want 2/1/16", rt.NumUserData, rt.NumInputVgprs, rt.NumAllocatedVgprs)
			}
		})
	}
}

func TestBuildRuntimeInfoFragment(t *testing.T) {
	f := newFixture()
	f.regs.NumInterp = 2
	f.regs.PsInputs[0] = regs.PsInput{InputOffset: 3, FlatShade: true}
	f.regs.PsInputs[1] = regs.PsInput{InputOffset: 5, UseDefault: true, DefaultValue: 2}
	f.regs.PsInputs[2] = regs.PsInput{InputOffset: 9}
	c := newTestCache(t, f)
	c.graphicsKey.MRTSwizzles[1] = regs.SwapAlternateReverse

	rt := c.buildRuntimeInfo(shader.StageFragment)
	want := []shader.PsInput{
		{ParamIndex: 3, IsFlat: true},
		{ParamIndex: 5, IsDefault: true, DefaultValue: 2},
	}
	if !slices.Equal(rt.FS.Inputs, want) {
		t.Errorf("Inputs = %v, want %v", rt.FS.Inputs, want)
	}
	if rt.FS.MRTSwizzles[1] != shader.MrtSwizzleReverseAlt {
		t.Errorf("MRTSwizzles[1] = %v, want %v", rt.FS.MRTSwizzles[1], shader.MrtSwizzleReverseAlt)
	}
	if rt.NumAllocatedVgprs != 8 {
		t.Errorf("NumAllocatedVgprs = %d, want 8", rt.NumAllocatedVgprs)
	}
}

func TestBuildRuntimeInfoInterpolantLimit(t *testing.T) {
	f := newFixture()
	f.regs.NumInterp = 100
	c := newTestCache(t, f)
	if rt := c.buildRuntimeInfo(shader.StageFragment); len(rt.FS.Inputs) != regs.NumInterpolants {
		t.Errorf("len(Inputs) = %d, want %d", len(rt.FS.Inputs), regs.NumInterpolants)
	}
}

func TestBuildRuntimeInfoCompute(t *testing.T) {
	f := newFixture()
	f.regs.CsProgram.TgidEnable = [3]bool{true, false, true}
	c := newTestCache(t, f)

	rt := c.buildRuntimeInfo(shader.StageCompute)
	if rt.CS.TgidEnable != [3]bool{true, false, true} {
		t.Errorf("TgidEnable = %v", rt.CS.TgidEnable)
	}
	if rt.NumUserData != 4 || rt.NumAllocatedVgprs != 32 {
		t.Errorf("counts = %d/%d, want 4/32", rt.NumUserData, rt.NumAllocatedVgprs)
	}
}
