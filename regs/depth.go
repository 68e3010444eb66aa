// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// CompareFunc is a hardware depth/stencil comparison function.
type CompareFunc uint8

// Comparison functions in hardware encoding order.
const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// StencilOp is a hardware stencil operation.
type StencilOp uint8

// Stencil operations in hardware encoding order.
const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilOnes
	StencilReplaceTest
	StencilReplaceOp
	StencilAddClamp
	StencilSubClamp
	StencilInvert
	StencilAddWrap
	StencilSubWrap
)

// DepthControl holds the depth/stencil test enables and functions.
type DepthControl struct {
	StencilEnable     bool
	DepthEnable       bool
	DepthWriteEnable  bool
	DepthBoundsEnable bool
	BackfaceEnable    bool
	DepthFunc         CompareFunc
	StencilFunc       CompareFunc
	StencilFuncBack   CompareFunc
}

// StencilControl holds the front and back stencil operations.
type StencilControl struct {
	StencilFail     StencilOp
	StencilZPass    StencilOp
	StencilZFail    StencilOp
	StencilFailBack StencilOp
	StencilZPassBF  StencilOp
	StencilZFailBF  StencilOp
}

// DepthRenderControl flags in-flight depth and stencil clears.
type DepthRenderControl struct {
	DepthClearEnable   bool
	StencilClearEnable bool
}

// ZFormat is the hardware depth surface format.
type ZFormat uint8

// Depth surface formats.
const (
	ZFormatInvalid ZFormat = 0
	ZFormat16      ZFormat = 1
	ZFormat32Float ZFormat = 3
)

// StencilFormat is the hardware stencil surface format.
type StencilFormat uint8

// Stencil surface formats.
const (
	StencilFormatInvalid StencilFormat = 0
	StencilFormat8       StencilFormat = 1
)

// DepthBuffer describes the bound depth/stencil surface.
type DepthBuffer struct {
	ZFormat       ZFormat
	StencilFormat StencilFormat
}
