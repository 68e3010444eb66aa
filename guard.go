// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"context"

	"github.com/gogpu/regpipe/regs"
)

// shouldSkipDraw reports register states that must never produce a
// pipeline. It runs before any cache is consulted.
func shouldSkipDraw(r *regs.Regs) bool {
	// Tessellation is unsupported; building such a pipeline can hang the driver.
	if r.PrimitiveType == regs.PrimitivePatch {
		return true
	}
	// Fast-clear elimination and FMask decompression are helper passes
	// with nothing to rasterize.
	switch r.ColorControl.Mode {
	case regs.ModeEliminateFastClear:
		Logger().Log(context.Background(), LevelTrace, "regpipe: FCE pass skipped")
		return true
	case regs.ModeFmaskDecompress:
		Logger().Log(context.Background(), LevelTrace, "regpipe: FMask decompression pass skipped")
		return true
	}
	if r.PrimitiveType == regs.PrimitiveNone {
		Logger().Log(context.Background(), LevelTrace, "regpipe: primitive type 'None' skipped")
		return true
	}
	return false
}
