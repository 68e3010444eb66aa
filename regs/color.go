// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

// OperationMode is the color-block operation mode.
type OperationMode uint8

// Color operation modes.
const (
	ModeDisable            OperationMode = 0
	ModeNormal             OperationMode = 1
	ModeEliminateFastClear OperationMode = 2
	ModeResolve            OperationMode = 3
	ModeFmaskDecompress    OperationMode = 5
	ModeDccDecompress      OperationMode = 6
)

// ColorControl mirrors the color control register.
type ColorControl struct {
	Mode OperationMode
}

// DataFormat is the hardware surface data format.
type DataFormat uint8

// Surface data formats used by render targets.
const (
	DataFormatInvalid     DataFormat = 0
	DataFormat8           DataFormat = 1
	DataFormat16          DataFormat = 2
	DataFormat8_8         DataFormat = 3
	DataFormat32          DataFormat = 4
	DataFormat16_16       DataFormat = 5
	DataFormat10_11_11    DataFormat = 6
	DataFormat2_10_10_10  DataFormat = 9
	DataFormat8_8_8_8     DataFormat = 10
	DataFormat32_32       DataFormat = 11
	DataFormat16_16_16_16 DataFormat = 12
	DataFormat32_32_32_32 DataFormat = 14
)

// NumberType is the hardware numeric interpretation of a surface.
type NumberType uint8

// Number types.
const (
	NumberUnorm NumberType = 0
	NumberSnorm NumberType = 1
	NumberUint  NumberType = 4
	NumberSint  NumberType = 5
	NumberSrgb  NumberType = 6
	NumberFloat NumberType = 7
)

// SwapMode is the color component swap applied by the color block.
type SwapMode uint8

// Component swap modes.
const (
	SwapStandard SwapMode = iota
	SwapAlternate
	SwapStandardReverse
	SwapAlternateReverse
)

// ColorBufferInfo holds the per-target format fields.
type ColorBufferInfo struct {
	Format      DataFormat
	NumberType  NumberType
	CompSwap    SwapMode
	BlendBypass bool
}

// ColorBuffer describes one hardware render target slot.
type ColorBuffer struct {
	// Base is the surface GPU address; zero means unbound.
	Base uint64
	Info ColorBufferInfo
}

// Bound reports whether a surface is attached to the slot.
func (c *ColorBuffer) Bound() bool {
	return c.Base != 0 && c.Info.Format != DataFormatInvalid
}

// NumFormat returns the numeric interpretation of the surface.
func (c *ColorBuffer) NumFormat() NumberType {
	return c.Info.NumberType
}

// ColorMask packs a 4-bit RGBA mask for each color slot.
type ColorMask uint32

// GetMask returns the 4-bit mask of slot cb.
func (m ColorMask) GetMask(cb int) uint32 {
	return (uint32(m) >> (cb * 4)) & 0xF
}

// SetMask replaces the 4-bit mask of slot cb.
func (m *ColorMask) SetMask(cb int, mask uint32) {
	shift := cb * 4
	*m = ColorMask((uint32(*m) &^ (0xF << shift)) | ((mask & 0xF) << shift))
}

// BlendFactor is a hardware blend factor.
type BlendFactor uint8

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlphaSaturate
	_
	_
	BlendConstantColor
	BlendOneMinusConstantColor
)

// BlendFunc is a hardware blend combine function.
type BlendFunc uint8

// Blend combine functions.
const (
	BlendFuncDstPlusSrc BlendFunc = iota
	BlendFuncSrcMinusDst
	BlendFuncMin
	BlendFuncMax
	BlendFuncDstMinusSrc
)

// BlendControl mirrors a per-target blend control register.
type BlendControl struct {
	ColorSrcFactor     BlendFactor
	ColorCombFunc      BlendFunc
	ColorDstFactor     BlendFactor
	AlphaSrcFactor     BlendFactor
	AlphaCombFunc      BlendFunc
	AlphaDstFactor     BlendFactor
	SeparateAlphaBlend bool
	Enable             bool
}
