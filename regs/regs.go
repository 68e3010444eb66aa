// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package regs models the shadow copy of graphics-processor context
// registers that the command processor maintains while replaying a
// command stream.
//
// The types here are plain values. The command processor owns a single
// Regs instance and rewrites fields as register writes arrive; consumers
// such as the pipeline cache only read it.
package regs

// Register file dimensions.
const (
	// NumColorBuffers is the number of hardware color render target slots.
	NumColorBuffers = 8

	// NumInterpolants is the capacity of the pixel-shader input table.
	NumInterpolants = 32

	// NumUserData is the number of user-data SGPRs per program.
	NumUserData = 16

	// MaxShaderStages is the number of graphics shader stage slots.
	MaxShaderStages = 5
)

// Stage slot indices used by StageEnable and ProgramForStage.
const (
	StageSlotFragment = 0
	StageSlotVertex   = 1
	StageSlotGeometry = 2
	StageSlotHull     = 3
	StageSlotLocal    = 4
)

// Regs is the shadow register state.
type Regs struct {
	DepthControl       DepthControl
	StencilControl     StencilControl
	DepthRenderControl DepthRenderControl
	DepthBuffer        DepthBuffer

	PolygonControl PolygonControl
	ClipperControl ClipperControl
	AAConfig       AAConfig

	PrimitiveType          PrimitiveType
	EnablePrimitiveRestart uint32
	PrimitiveRestartIndex  uint32

	ColorControl    ColorControl
	ColorBuffers    [NumColorBuffers]ColorBuffer
	BlendControl    [NumColorBuffers]BlendControl
	ColorTargetMask ColorMask
	ColorShaderMask ColorMask

	VsOutputControl VsOutputControl
	PsInputs        [NumInterpolants]PsInput
	NumInterp       uint32

	StageEnable StageEnable
	PsProgram   ShaderProgram
	VsProgram   ShaderProgram
	GsProgram   ShaderProgram
	HsProgram   ShaderProgram
	LsProgram   ShaderProgram
	CsProgram   ComputeProgram
}

// ProgramForStage returns the program register block for a graphics stage
// slot, or nil when the slot index is out of range.
func (r *Regs) ProgramForStage(slot int) *ShaderProgram {
	switch slot {
	case StageSlotFragment:
		return &r.PsProgram
	case StageSlotVertex:
		return &r.VsProgram
	case StageSlotGeometry:
		return &r.GsProgram
	case StageSlotHull:
		return &r.HsProgram
	case StageSlotLocal:
		return &r.LsProgram
	}
	return nil
}

// StageEnable mirrors the shader-stage enable register. The vertex and
// pixel stages always run; the others are opt-in.
type StageEnable struct {
	GsEnable bool
	HsEnable bool
	LsEnable bool
}

// IsStageEnabled reports whether the stage slot participates in draws.
func (s StageEnable) IsStageEnabled(slot int) bool {
	switch slot {
	case StageSlotFragment, StageSlotVertex:
		return true
	case StageSlotGeometry:
		return s.GsEnable
	case StageSlotHull:
		return s.HsEnable
	case StageSlotLocal:
		return s.LsEnable
	}
	return false
}
