// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/regpipe/regs"
)

// surfaceFormat maps a color buffer's (data format, number type) pair to a
// texture format. Unsupported pairs map to TextureFormatUndefined.
func surfaceFormat(df regs.DataFormat, nt regs.NumberType) gputypes.TextureFormat {
	switch df {
	case regs.DataFormat8:
		switch nt {
		case regs.NumberUnorm:
			return gputypes.TextureFormatR8Unorm
		case regs.NumberSnorm:
			return gputypes.TextureFormatR8Snorm
		case regs.NumberUint:
			return gputypes.TextureFormatR8Uint
		case regs.NumberSint:
			return gputypes.TextureFormatR8Sint
		}
	case regs.DataFormat16:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatR16Uint
		case regs.NumberSint:
			return gputypes.TextureFormatR16Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatR16Float
		}
	case regs.DataFormat8_8:
		switch nt {
		case regs.NumberUnorm:
			return gputypes.TextureFormatRG8Unorm
		case regs.NumberSnorm:
			return gputypes.TextureFormatRG8Snorm
		case regs.NumberUint:
			return gputypes.TextureFormatRG8Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRG8Sint
		}
	case regs.DataFormat32:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatR32Uint
		case regs.NumberSint:
			return gputypes.TextureFormatR32Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatR32Float
		}
	case regs.DataFormat16_16:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatRG16Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRG16Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatRG16Float
		}
	case regs.DataFormat10_11_11:
		if nt == regs.NumberFloat {
			return gputypes.TextureFormatRG11B10Ufloat
		}
	case regs.DataFormat2_10_10_10:
		switch nt {
		case regs.NumberUnorm:
			return gputypes.TextureFormatRGB10A2Unorm
		case regs.NumberUint:
			return gputypes.TextureFormatRGB10A2Uint
		}
	case regs.DataFormat8_8_8_8:
		switch nt {
		case regs.NumberUnorm:
			return gputypes.TextureFormatRGBA8Unorm
		case regs.NumberSnorm:
			return gputypes.TextureFormatRGBA8Snorm
		case regs.NumberUint:
			return gputypes.TextureFormatRGBA8Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRGBA8Sint
		case regs.NumberSrgb:
			return gputypes.TextureFormatRGBA8UnormSrgb
		}
	case regs.DataFormat32_32:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatRG32Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRG32Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatRG32Float
		}
	case regs.DataFormat16_16_16_16:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatRGBA16Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRGBA16Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatRGBA16Float
		}
	case regs.DataFormat32_32_32_32:
		switch nt {
		case regs.NumberUint:
			return gputypes.TextureFormatRGBA32Uint
		case regs.NumberSint:
			return gputypes.TextureFormatRGBA32Sint
		case regs.NumberFloat:
			return gputypes.TextureFormatRGBA32Float
		}
	}
	return gputypes.TextureFormatUndefined
}

// depthFormat resolves the combined depth/stencil attachment format.
func depthFormat(z regs.ZFormat, s regs.StencilFormat) gputypes.TextureFormat {
	hasStencil := s != regs.StencilFormatInvalid
	switch z {
	case regs.ZFormat16:
		if hasStencil {
			return gputypes.TextureFormatDepth24PlusStencil8
		}
		return gputypes.TextureFormatDepth16Unorm
	case regs.ZFormat32Float:
		if hasStencil {
			return gputypes.TextureFormatDepth32FloatStencil8
		}
		return gputypes.TextureFormatDepth32Float
	}
	if hasStencil {
		return gputypes.TextureFormatStencil8
	}
	return gputypes.TextureFormatUndefined
}

// adjustColorBufferFormat applies the component swap to 4x8-bit formats.
// Alternate swaps exchange the red and blue channels, which the backend
// expresses as the BGRA format. Video-out surfaces have no sRGB view.
func adjustColorBufferFormat(base gputypes.TextureFormat, swap regs.SwapMode, isVOSurface bool) gputypes.TextureFormat {
	if swap == regs.SwapAlternate {
		switch base {
		case gputypes.TextureFormatRGBA8Unorm:
			return gputypes.TextureFormatBGRA8Unorm
		case gputypes.TextureFormatBGRA8Unorm:
			return gputypes.TextureFormatRGBA8Unorm
		case gputypes.TextureFormatRGBA8UnormSrgb:
			if isVOSurface {
				return gputypes.TextureFormatBGRA8Unorm
			}
			return gputypes.TextureFormatBGRA8UnormSrgb
		case gputypes.TextureFormatBGRA8UnormSrgb:
			return gputypes.TextureFormatRGBA8UnormSrgb
		}
		return base
	}
	if isVOSurface && base == gputypes.TextureFormatRGBA8UnormSrgb {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return base
}
