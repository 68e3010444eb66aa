// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/regpipe/regs"
)

// convertTopology maps a hardware primitive type to a topology. Fans,
// rectangles, quads and polygons are drawn from triangle lists produced by
// index conversion, and line loops from closed strips.
func convertTopology(p regs.PrimitiveType) gputypes.PrimitiveTopology {
	switch p {
	case regs.PrimitivePointList:
		return gputypes.PrimitiveTopologyPointList
	case regs.PrimitiveLineList:
		return gputypes.PrimitiveTopologyLineList
	case regs.PrimitiveLineStrip, regs.PrimitiveLineLoop:
		return gputypes.PrimitiveTopologyLineStrip
	case regs.PrimitiveTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	}
	return gputypes.PrimitiveTopologyTriangleList
}

// convertCullMode maps the hardware cull bits. Culling both faces has no
// equivalent; callers mask out every sample instead.
func convertCullMode(m regs.CullMode) gputypes.CullMode {
	switch m {
	case regs.CullFront:
		return gputypes.CullModeFront
	case regs.CullBack:
		return gputypes.CullModeBack
	}
	return gputypes.CullModeNone
}

func convertFrontFace(f regs.FrontFace) gputypes.FrontFace {
	if f == regs.FrontFaceCW {
		return gputypes.FrontFaceCW
	}
	return gputypes.FrontFaceCCW
}

func convertCompare(f regs.CompareFunc) gputypes.CompareFunction {
	switch f {
	case regs.CompareNever:
		return gputypes.CompareFunctionNever
	case regs.CompareLess:
		return gputypes.CompareFunctionLess
	case regs.CompareEqual:
		return gputypes.CompareFunctionEqual
	case regs.CompareLessEqual:
		return gputypes.CompareFunctionLessEqual
	case regs.CompareGreater:
		return gputypes.CompareFunctionGreater
	case regs.CompareNotEqual:
		return gputypes.CompareFunctionNotEqual
	case regs.CompareGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual
	}
	return gputypes.CompareFunctionAlways
}

// convertStencilOp maps a hardware stencil op. Ones and both replace
// variants write the reference value, which the command processor sets
// per draw.
func convertStencilOp(op regs.StencilOp) hal.StencilOperation {
	switch op {
	case regs.StencilZero:
		return hal.StencilOperationZero
	case regs.StencilOnes, regs.StencilReplaceTest, regs.StencilReplaceOp:
		return hal.StencilOperationReplace
	case regs.StencilAddClamp:
		return hal.StencilOperationIncrementClamp
	case regs.StencilSubClamp:
		return hal.StencilOperationDecrementClamp
	case regs.StencilInvert:
		return hal.StencilOperationInvert
	case regs.StencilAddWrap:
		return hal.StencilOperationIncrementWrap
	case regs.StencilSubWrap:
		return hal.StencilOperationDecrementWrap
	}
	return hal.StencilOperationKeep
}

func convertBlendFactor(f regs.BlendFactor) gputypes.BlendFactor {
	switch f {
	case regs.BlendZero:
		return gputypes.BlendFactorZero
	case regs.BlendOne:
		return gputypes.BlendFactorOne
	case regs.BlendSrcColor:
		return gputypes.BlendFactorSrc
	case regs.BlendOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc
	case regs.BlendSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case regs.BlendOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case regs.BlendDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case regs.BlendOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	case regs.BlendDstColor:
		return gputypes.BlendFactorDst
	case regs.BlendOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst
	case regs.BlendSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated
	case regs.BlendConstantColor:
		return gputypes.BlendFactorConstant
	case regs.BlendOneMinusConstantColor:
		return gputypes.BlendFactorOneMinusConstant
	}
	return gputypes.BlendFactorOne
}

func convertBlendOp(f regs.BlendFunc) gputypes.BlendOperation {
	switch f {
	case regs.BlendFuncSrcMinusDst:
		return gputypes.BlendOperationSubtract
	case regs.BlendFuncDstMinusSrc:
		return gputypes.BlendOperationReverseSubtract
	case regs.BlendFuncMin:
		return gputypes.BlendOperationMin
	case regs.BlendFuncMax:
		return gputypes.BlendOperationMax
	}
	return gputypes.BlendOperationAdd
}

// convertBlend returns nil when blending is disabled. Without separate
// alpha blending the color equation applies to alpha too.
func convertBlend(b *regs.BlendControl) *gputypes.BlendState {
	if !b.Enable {
		return nil
	}
	color := gputypes.BlendComponent{
		SrcFactor: convertBlendFactor(b.ColorSrcFactor),
		DstFactor: convertBlendFactor(b.ColorDstFactor),
		Operation: convertBlendOp(b.ColorCombFunc),
	}
	alpha := color
	if b.SeparateAlphaBlend {
		alpha = gputypes.BlendComponent{
			SrcFactor: convertBlendFactor(b.AlphaSrcFactor),
			DstFactor: convertBlendFactor(b.AlphaDstFactor),
			Operation: convertBlendOp(b.AlphaCombFunc),
		}
	}
	return &gputypes.BlendState{Color: color, Alpha: alpha}
}
