// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// PrimitiveType is the hardware primitive topology.
type PrimitiveType uint32

// Primitive types in hardware encoding.
const (
	PrimitiveNone          PrimitiveType = 0x00
	PrimitivePointList     PrimitiveType = 0x01
	PrimitiveLineList      PrimitiveType = 0x02
	PrimitiveLineStrip     PrimitiveType = 0x03
	PrimitiveTriangleList  PrimitiveType = 0x04
	PrimitiveTriangleFan   PrimitiveType = 0x05
	PrimitiveTriangleStrip PrimitiveType = 0x06
	PrimitivePatch         PrimitiveType = 0x09
	PrimitiveRectList      PrimitiveType = 0x11
	PrimitiveLineLoop      PrimitiveType = 0x12
	PrimitiveQuadList      PrimitiveType = 0x13
	PrimitiveQuadStrip     PrimitiveType = 0x14
	PrimitivePolygon       PrimitiveType = 0x15
)

// PolygonMode is the rasterizer fill mode.
type PolygonMode uint8

// Polygon modes.
const (
	PolygonPoint PolygonMode = iota
	PolygonLine
	PolygonFill
)

// CullMode selects which faces the rasterizer discards.
type CullMode uint8

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// FrontFace is the winding order of front-facing triangles.
type FrontFace uint8

// Front face windings.
const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// PolygonControl mirrors the primitive setup control register.
type PolygonControl struct {
	CullFront             bool
	CullBack              bool
	FrontFace             FrontFace
	EnablePolygonMode     bool
	PolyModeFront         PolygonMode
	PolyModeBack          PolygonMode
	PolyOffsetFrontEnable bool
	PolyOffsetBackEnable  bool
	PolyOffsetParaEnable  bool
}

// NeedsBias reports whether any polygon offset is enabled.
func (p PolygonControl) NeedsBias() bool {
	return p.PolyOffsetFrontEnable || p.PolyOffsetBackEnable || p.PolyOffsetParaEnable
}

// PolyMode returns the effective fill mode. Front and back modes are not
// tracked separately by the backend; the front mode wins.
func (p PolygonControl) PolyMode() PolygonMode {
	if !p.EnablePolygonMode {
		return PolygonFill
	}
	return p.PolyModeFront
}

// CullingMode folds the two cull bits into a CullMode.
func (p PolygonControl) CullingMode() CullMode {
	mode := CullNone
	if p.CullFront {
		mode |= CullFront
	}
	if p.CullBack {
		mode |= CullBack
	}
	return mode
}

// ClipSpace is the clip-space depth convention.
type ClipSpace uint8

// Clip-space conventions.
const (
	ClipSpaceMinusWToW ClipSpace = iota
	ClipSpaceZeroToW
)

// ClipperControl mirrors the clipper control register.
type ClipperControl struct {
	ClipSpace ClipSpace
}

// AAConfig holds the multisample configuration.
type AAConfig struct {
	// MsaaNumSamples is log2 of the sample count.
	MsaaNumSamples uint8
}

// NumSamples returns the sample count.
func (a AAConfig) NumSamples() uint32 {
	return 1 << (a.MsaaNumSamples & 0xF)
}
