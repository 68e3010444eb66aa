// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "slices"

// MaxColorBuffers is the number of color attachment slots tracked in
// fragment runtime info.
const MaxColorBuffers = 8

// VsOutput names one component of an auxiliary vertex export.
type VsOutput uint8

// Vertex export components.
const (
	VsOutputNone VsOutput = iota
	VsOutputPointSprite
	VsOutputEdgeFlag
	VsOutputKillFlag
	VsOutputGsCutFlag
	VsOutputGsMrtIndex
	VsOutputGsVpIndex
	VsOutputCullDist0
	VsOutputCullDist1
	VsOutputCullDist2
	VsOutputCullDist3
	VsOutputCullDist4
	VsOutputCullDist5
	VsOutputCullDist6
	VsOutputCullDist7
	VsOutputClipDist0
	VsOutputClipDist1
	VsOutputClipDist2
	VsOutputClipDist3
	VsOutputClipDist4
	VsOutputClipDist5
	VsOutputClipDist6
	VsOutputClipDist7
)

// VsOutputMap is one packed 4-component vertex export.
type VsOutputMap [4]VsOutput

// MrtSwizzle is the component order of a color attachment.
type MrtSwizzle uint8

// Attachment swizzles.
const (
	MrtSwizzleIdentity MrtSwizzle = iota
	MrtSwizzleAlt
	MrtSwizzleReverse
	MrtSwizzleReverseAlt
)

// PsInput describes how one fragment interpolant is sourced.
type PsInput struct {
	ParamIndex   uint8
	IsDefault    bool
	IsFlat       bool
	DefaultValue uint8
}

// VertexRuntimeInfo is the vertex-stage part of RuntimeInfo.
type VertexRuntimeInfo struct {
	Outputs                      []VsOutputMap
	EmulateDepthNegativeOneToOne bool
}

// FragmentRuntimeInfo is the fragment-stage part of RuntimeInfo.
type FragmentRuntimeInfo struct {
	Inputs      []PsInput
	MRTSwizzles [MaxColorBuffers]MrtSwizzle
}

// ComputeRuntimeInfo is the compute-stage part of RuntimeInfo.
type ComputeRuntimeInfo struct {
	WorkgroupSize    [3]uint32
	TgidEnable       [3]bool
	SharedMemorySize uint32
}

// RuntimeInfo captures register state that changes generated code but is
// not part of the program bytecode.
type RuntimeInfo struct {
	Stage             Stage
	NumUserData       uint32
	NumInputVgprs     uint32
	NumAllocatedVgprs uint32

	VS VertexRuntimeInfo
	FS FragmentRuntimeInfo
	CS ComputeRuntimeInfo
}

// Equal reports whether two runtime infos would generate the same code.
// Only the part belonging to the stage is compared.
func (r *RuntimeInfo) Equal(o *RuntimeInfo) bool {
	if r.Stage != o.Stage ||
		r.NumUserData != o.NumUserData ||
		r.NumInputVgprs != o.NumInputVgprs ||
		r.NumAllocatedVgprs != o.NumAllocatedVgprs {
		return false
	}
	switch r.Stage {
	case StageVertex:
		return r.VS.EmulateDepthNegativeOneToOne == o.VS.EmulateDepthNegativeOneToOne &&
			slices.Equal(r.VS.Outputs, o.VS.Outputs)
	case StageFragment:
		return r.FS.MRTSwizzles == o.FS.MRTSwizzles && slices.Equal(r.FS.Inputs, o.FS.Inputs)
	case StageCompute:
		return r.CS == o.CS
	}
	return true
}

// Clone returns a deep copy.
func (r *RuntimeInfo) Clone() RuntimeInfo {
	c := *r
	c.VS.Outputs = slices.Clone(r.VS.Outputs)
	c.FS.Inputs = slices.Clone(r.FS.Inputs)
	return c
}
