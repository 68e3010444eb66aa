// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

// buildRuntimeInfo derives the specialization inputs of a stage from the
// registers and the key under construction. Fragment info reads the
// swizzles recorded by the first color pass.
func (c *PipelineCache) buildRuntimeInfo(stage shader.Stage) shader.RuntimeInfo {
	r := c.regs.Registers()
	info := shader.RuntimeInfo{Stage: stage}

	switch stage {
	case shader.StageVertex:
		vs := &r.VsProgram
		info.NumUserData = uint32(vs.Settings.NumUserRegs)
		info.NumInputVgprs = uint32(vs.Settings.VgprCompCnt)
		info.NumAllocatedVgprs = uint32(vs.Settings.NumVgprs) * 4
		info.VS.Outputs = gatherVertexOutputs(r.VsOutputControl)
		info.VS.EmulateDepthNegativeOneToOne = !c.opts.depthClipControl &&
			r.ClipperControl.ClipSpace == regs.ClipSpaceMinusWToW

	case shader.StageFragment:
		ps := &r.PsProgram
		info.NumUserData = uint32(ps.Settings.NumUserRegs)
		info.NumAllocatedVgprs = uint32(ps.Settings.NumVgprs) * 4
		for i, sw := range c.graphicsKey.MRTSwizzles {
			info.FS.MRTSwizzles[i] = shader.MrtSwizzle(sw)
		}
		n := min(int(r.NumInterp), regs.NumInterpolants)
		info.FS.Inputs = make([]shader.PsInput, 0, n)
		for _, in := range r.PsInputs[:n] {
			info.FS.Inputs = append(info.FS.Inputs, shader.PsInput{
				ParamIndex:   in.InputOffset,
				IsDefault:    in.UseDefault,
				IsFlat:       in.FlatShade,
				DefaultValue: in.DefaultValue,
			})
		}

	case shader.StageCompute:
		cs := &r.CsProgram
		info.NumUserData = uint32(cs.Settings.NumUserRegs)
		info.NumAllocatedVgprs = uint32(cs.Settings.NumVgprs) * 4
		info.CS.WorkgroupSize = [3]uint32{cs.NumThreadX, cs.NumThreadY, cs.NumThreadZ}
		for i := range info.CS.TgidEnable {
			info.CS.TgidEnable[i] = cs.IsTgidEnabled(i)
		}
		info.CS.SharedMemorySize = cs.SharedMemSize()
	}
	return info
}

// gatherVertexOutputs groups the vertex export slots into records of four
// components. Records whose components are all unused are omitted.
func gatherVertexOutputs(ctl regs.VsOutputControl) []shader.VsOutputMap {
	var outputs []shader.VsOutputMap
	add := func(m shader.VsOutputMap) {
		if m != (shader.VsOutputMap{}) {
			outputs = append(outputs, m)
		}
	}
	pick := func(cond bool, v shader.VsOutput) shader.VsOutput {
		if cond {
			return v
		}
		return shader.VsOutputNone
	}

	misc := shader.VsOutputMap{
		pick(ctl.UseVtxPointSize, shader.VsOutputPointSprite),
		shader.VsOutputNone,
		shader.VsOutputNone,
		pick(ctl.UseVtxViewportIdx, shader.VsOutputGsVpIndex),
	}
	switch {
	case ctl.UseVtxEdgeFlag:
		misc[1] = shader.VsOutputEdgeFlag
	case ctl.UseVtxGsCutFlag:
		misc[1] = shader.VsOutputGsCutFlag
	}
	switch {
	case ctl.UseVtxKillFlag:
		misc[2] = shader.VsOutputKillFlag
	case ctl.UseVtxRenderTargetIdx:
		misc[2] = shader.VsOutputGsMrtIndex
	}
	add(misc)

	distance := func(i int) shader.VsOutput {
		switch {
		case ctl.IsClipDistEnabled(i):
			return shader.VsOutputClipDist0 + shader.VsOutput(i)
		case ctl.IsCullDistEnabled(i):
			return shader.VsOutputCullDist0 + shader.VsOutput(i)
		}
		return shader.VsOutputNone
	}
	for base := 0; base < 8; base += 4 {
		add(shader.VsOutputMap{distance(base), distance(base + 1), distance(base + 2), distance(base + 3)})
	}
	return outputs
}
