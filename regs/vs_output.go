// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// VsOutputControl mirrors the vertex output control register: which
// auxiliary per-vertex values the last pre-raster stage exports.
type VsOutputControl struct {
	ClipDistanceEnable    uint8
	CullDistanceEnable    uint8
	UseVtxPointSize       bool
	UseVtxEdgeFlag        bool
	UseVtxRenderTargetIdx bool
	UseVtxViewportIdx     bool
	UseVtxKillFlag        bool
	UseVtxGsCutFlag       bool
}

// IsClipDistEnabled reports whether clip distance i (0-7) is exported.
func (c VsOutputControl) IsClipDistEnabled(i int) bool {
	return (c.ClipDistanceEnable>>i)&1 != 0
}

// IsCullDistEnabled reports whether cull distance i (0-7) is exported.
func (c VsOutputControl) IsCullDistEnabled(i int) bool {
	return (c.CullDistanceEnable>>i)&1 != 0
}

// PsInput is one pixel-shader interpolant table entry.
type PsInput struct {
	InputOffset  uint8
	UseDefault   bool
	DefaultValue uint8
	FlatShade    bool
}
