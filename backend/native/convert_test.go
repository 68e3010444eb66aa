// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/regpipe/regs"
)

func TestConvertTopology(t *testing.T) {
	tests := []struct {
		in   regs.PrimitiveType
		want gputypes.PrimitiveTopology
	}{
		{regs.PrimitivePointList, gputypes.PrimitiveTopologyPointList},
		{regs.PrimitiveLineList, gputypes.PrimitiveTopologyLineList},
		{regs.PrimitiveLineLoop, gputypes.PrimitiveTopologyLineStrip},
		{regs.PrimitiveTriangleList, gputypes.PrimitiveTopologyTriangleList},
		{regs.PrimitiveTriangleStrip, gputypes.PrimitiveTopologyTriangleStrip},
		{regs.PrimitiveRectList, gputypes.PrimitiveTopologyTriangleList},
		{regs.PrimitiveQuadList, gputypes.PrimitiveTopologyTriangleList},
	}
	for _, tt := range tests {
		if got := convertTopology(tt.in); got != tt.want {
			t.Errorf("convertTopology(%#x) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertStencilOp(t *testing.T) {
	tests := []struct {
		in   regs.StencilOp
		want hal.StencilOperation
	}{
		{regs.StencilKeep, hal.StencilOperationKeep},
		{regs.StencilZero, hal.StencilOperationZero},
		{regs.StencilReplaceTest, hal.StencilOperationReplace},
		{regs.StencilAddClamp, hal.StencilOperationIncrementClamp},
		{regs.StencilSubClamp, hal.StencilOperationDecrementClamp},
		{regs.StencilInvert, hal.StencilOperationInvert},
		{regs.StencilAddWrap, hal.StencilOperationIncrementWrap},
		{regs.StencilSubWrap, hal.StencilOperationDecrementWrap},
	}
	for _, tt := range tests {
		if got := convertStencilOp(tt.in); got != tt.want {
			t.Errorf("convertStencilOp(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertBlendSeparateAlpha(t *testing.T) {
	b := regs.BlendControl{
		ColorSrcFactor:     regs.BlendOne,
		ColorDstFactor:     regs.BlendZero,
		ColorCombFunc:      regs.BlendFuncSrcMinusDst,
		AlphaSrcFactor:     regs.BlendDstAlpha,
		AlphaDstFactor:     regs.BlendConstantColor,
		AlphaCombFunc:      regs.BlendFuncMax,
		SeparateAlphaBlend: true,
		Enable:             true,
	}
	got := convertBlend(&b)
	if got == nil {
		t.Fatal("convertBlend() = nil")
	}
	if got.Color.Operation != gputypes.BlendOperationSubtract {
		t.Errorf("color op = %v, want subtract", got.Color.Operation)
	}
	want := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorDstAlpha,
		DstFactor: gputypes.BlendFactorConstant,
		Operation: gputypes.BlendOperationMax,
	}
	if got.Alpha != want {
		t.Errorf("alpha = %+v, want %+v", got.Alpha, want)
	}

	b.SeparateAlphaBlend = false
	if got := convertBlend(&b); got.Alpha != got.Color {
		t.Error("alpha does not follow color without separate alpha blending")
	}
}

func TestConvertCompare(t *testing.T) {
	if convertCompare(regs.CompareNever) != gputypes.CompareFunctionNever ||
		convertCompare(regs.CompareGreaterEqual) != gputypes.CompareFunctionGreaterEqual ||
		convertCompare(regs.CompareAlways) != gputypes.CompareFunctionAlways {
		t.Error("compare function mismatch")
	}
}
