// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"fmt"
	"hash/fnv"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/regpipe/regs"
	"github.com/gogpu/regpipe/shader"
)

// GraphicsPipelineKey fully determines a graphics pipeline. It is a
// comparable value and is used directly as a map key, so it must only hold
// fixed-size fields.
//
// Color attachment arrays are dense: entry i describes the i-th attachment
// that survived filtering, not hardware slot i.
type GraphicsPipelineKey struct {
	DepthStencil    regs.DepthControl
	Stencil         regs.StencilControl
	DepthBiasEnable bool
	DepthFormat     gputypes.TextureFormat
	StencilFormat   gputypes.TextureFormat

	PrimType               regs.PrimitiveType
	EnablePrimitiveRestart bool
	PrimitiveRestartIndex  uint32
	PolygonMode            regs.PolygonMode
	CullMode               regs.CullMode
	FrontFace              regs.FrontFace
	ClipSpace              regs.ClipSpace
	NumSamples             uint32

	NumColorAttachments uint32
	ColorFormats        [regs.NumColorBuffers]gputypes.TextureFormat
	MRTSwizzles         [regs.NumColorBuffers]regs.SwapMode
	BlendControls       [regs.NumColorBuffers]regs.BlendControl
	WriteMasks          [regs.NumColorBuffers]gputypes.ColorWriteMask

	// MRTMask is the fragment program's output mask by hardware slot.
	MRTMask uint32
	// CbShaderMask holds the 4-bit shader channel mask per dense attachment.
	CbShaderMask regs.ColorMask

	StageHashes [MaxShaderStages]uint64
}

// colorCandidate is a color slot accepted by the first attachment pass.
type colorCandidate struct {
	slot    int
	format  gputypes.TextureFormat
	swizzle regs.SwapMode
}

// refreshGraphicsKey rebuilds c.graphicsKey from the registers. It reports
// false when the draw must be skipped.
//
// The color attachments are processed in two passes around stage
// resolution: the first pass decides formats and swizzles that fragment
// translation depends on, the second drops attachments the fragment
// program never writes.
func (c *PipelineCache) refreshGraphicsKey() (bool, error) {
	c.graphicsKey = GraphicsPipelineKey{}
	c.infos = [MaxShaderStages]*shader.Info{}
	c.modules = [MaxShaderStages]shader.ModuleID{}
	c.entryPoints = [MaxShaderStages]string{}

	r := c.regs.Registers()
	key := &c.graphicsKey

	key.DepthStencil = r.DepthControl
	key.DepthStencil.DepthWriteEnable = r.DepthControl.DepthWriteEnable &&
		!r.DepthRenderControl.DepthClearEnable
	key.DepthBiasEnable = r.PolygonControl.NeedsBias()

	db := &r.DepthBuffer
	dsFormat := depthFormat(db.ZFormat, db.StencilFormat)
	if db.ZFormat != regs.ZFormatInvalid {
		key.DepthFormat = dsFormat
	} else {
		key.DepthFormat = gputypes.TextureFormatUndefined
	}
	if r.DepthControl.DepthEnable {
		key.DepthStencil.DepthEnable = key.DepthFormat != gputypes.TextureFormatUndefined
	}
	key.Stencil = r.StencilControl

	if db.StencilFormat != regs.StencilFormatInvalid {
		key.StencilFormat = key.DepthFormat
	} else {
		key.StencilFormat = gputypes.TextureFormatUndefined
	}
	if key.DepthStencil.StencilEnable {
		key.DepthStencil.StencilEnable = key.StencilFormat != gputypes.TextureFormatUndefined
	}

	key.PrimType = r.PrimitiveType
	key.EnablePrimitiveRestart = r.EnablePrimitiveRestart&1 != 0
	key.PrimitiveRestartIndex = r.PrimitiveRestartIndex
	key.PolygonMode = r.PolygonControl.PolyMode()
	key.CullMode = r.PolygonControl.CullingMode()
	key.ClipSpace = r.ClipperControl.ClipSpace
	key.FrontFace = r.PolygonControl.FrontFace
	key.NumSamples = r.AAConfig.NumSamples()

	c.collectColorCandidates(r)

	// Vet every stage before compiling any: an aborted draw leaves the
	// program cache untouched.
	var pgms [MaxShaderStages]*regs.ShaderProgram
	for i := range MaxShaderStages {
		if !r.StageEnable.IsStageEnabled(i) {
			continue
		}
		pgm := r.ProgramForStage(i)
		if pgm == nil || !pgm.Bound() {
			continue
		}
		bininfo := regs.GetBinaryInfo(pgm)
		if !bininfo.Valid() {
			Logger().Warn("regpipe: invalid binary info structure", "stage", shader.StageFromIndex(i))
			continue
		}
		if c.shouldSkipShader(bininfo.ShaderHash(), "graphics") {
			return false, nil
		}
		stage := shader.StageFromIndex(i)
		if stage != shader.StageVertex && stage != shader.StageFragment {
			return false, nil
		}
		if hs := r.ProgramForStage(regs.StageSlotHull); r.StageEnable.IsStageEnabled(regs.StageSlotHull) && hs.Bound() {
			if !c.tessMissingLogged {
				Logger().Warn("regpipe: tessellation pipeline compilation skipped")
				c.tessMissingLogged = true
			}
			return false, nil
		}
		pgms[i] = pgm
	}

	var binding uint32
	for i, pgm := range pgms {
		if pgm == nil {
			continue
		}
		res, err := c.getProgram(shader.StageFromIndex(i), regs.GetParams(pgm), &binding)
		if err != nil {
			return false, err
		}
		c.infos[i], c.modules[i], key.StageHashes[i] = res.Info, res.Module, res.Hash
		c.entryPoints[i] = res.EntryPoint
	}

	c.resolveColorAttachments(r)
	return true, nil
}

// collectColorCandidates is the first attachment pass. Bound, unmasked
// color slots are packed in slot order and their formats and swizzles are
// written to the key for fragment translation.
func (c *PipelineCache) collectColorCandidates(r *regs.Regs) {
	key := &c.graphicsKey
	for i := range key.ColorFormats {
		key.ColorFormats[i] = gputypes.TextureFormatUndefined
		key.MRTSwizzles[i] = regs.SwapStandard
	}

	c.numCandidates = 0
	skipBinding := r.ColorControl.Mode == regs.ModeDisable
	for cb := range regs.NumColorBuffers {
		colBuf := &r.ColorBuffers[cb]
		if skipBinding || !colBuf.Bound() || r.ColorTargetMask.GetMask(cb) == 0 {
			continue
		}
		baseFormat := surfaceFormat(colBuf.Info.Format, colBuf.NumFormat())
		isVOSurface := c.opts.videoOutFormats && c.opts.videoOut != nil &&
			c.opts.videoOut.IsVideoOutSurface(colBuf)
		cand := colorCandidate{
			slot:    cb,
			format:  adjustColorBufferFormat(baseFormat, colBuf.Info.CompSwap, isVOSurface),
			swizzle: regs.SwapStandard,
		}
		if baseFormat == cand.format {
			cand.swizzle = colBuf.Info.CompSwap
		}

		remapped := c.numCandidates
		key.ColorFormats[remapped] = cand.format
		key.MRTSwizzles[remapped] = cand.swizzle
		c.candidates[remapped] = cand
		c.numCandidates++
	}
}

// resolveColorAttachments is the second attachment pass. Candidates the
// fragment program does not write are dropped and the survivors are packed
// again, now with blend state and write masks.
func (c *PipelineCache) resolveColorAttachments(r *regs.Regs) {
	key := &c.graphicsKey
	if fs := c.infos[regs.StageSlotFragment]; fs != nil {
		key.MRTMask = fs.MRTMask
	}

	for i := range key.ColorFormats {
		key.ColorFormats[i] = gputypes.TextureFormatUndefined
		key.MRTSwizzles[i] = regs.SwapStandard
	}

	remapped := 0
	for _, cand := range c.candidates[:c.numCandidates] {
		if key.MRTMask&(1<<cand.slot) == 0 {
			continue
		}
		colBuf := &r.ColorBuffers[cand.slot]
		key.ColorFormats[remapped] = cand.format
		key.MRTSwizzles[remapped] = cand.swizzle

		blend := r.BlendControl[cand.slot]
		blend.Enable = blend.Enable && !colBuf.Info.BlendBypass
		key.BlendControls[remapped] = blend
		key.WriteMasks[remapped] = gputypes.ColorWriteMask(r.ColorTargetMask.GetMask(cand.slot))
		key.CbShaderMask.SetMask(remapped, r.ColorShaderMask.GetMask(cand.slot))
		remapped++
	}
	key.NumColorAttachments = uint32(remapped) //nolint:gosec // G115: bounded by NumColorBuffers
}

// shouldSkipShader reports deny-listed programs.
func (c *PipelineCache) shouldSkipShader(hash uint64, kind string) bool {
	if !c.opts.denyList.Contains(hash) {
		return false
	}
	Logger().Debug("regpipe: skipped deny-listed shader",
		"kind", kind, "hash", fmt.Sprintf("%#x", hash))
	return true
}

// Hash returns an FNV-1a digest of every key field. Map lookups use the
// key itself; the digest identifies a key in logs and dumps.
func (k *GraphicsPipelineKey) Hash() uint64 {
	h := fnv.New64a()

	ds := &k.DepthStencil
	hashWriteBool(h, ds.StencilEnable)
	hashWriteBool(h, ds.DepthEnable)
	hashWriteBool(h, ds.DepthWriteEnable)
	hashWriteBool(h, ds.DepthBoundsEnable)
	hashWriteBool(h, ds.BackfaceEnable)
	hashWriteUint32(h, uint32(ds.DepthFunc))
	hashWriteUint32(h, uint32(ds.StencilFunc))
	hashWriteUint32(h, uint32(ds.StencilFuncBack))

	st := &k.Stencil
	for _, op := range [...]regs.StencilOp{
		st.StencilFail, st.StencilZPass, st.StencilZFail,
		st.StencilFailBack, st.StencilZPassBF, st.StencilZFailBF,
	} {
		hashWriteUint32(h, uint32(op))
	}

	hashWriteBool(h, k.DepthBiasEnable)
	hashWriteUint32(h, uint32(k.DepthFormat))
	hashWriteUint32(h, uint32(k.StencilFormat))
	hashWriteUint32(h, uint32(k.PrimType))
	hashWriteBool(h, k.EnablePrimitiveRestart)
	hashWriteUint32(h, k.PrimitiveRestartIndex)
	hashWriteUint32(h, uint32(k.PolygonMode))
	hashWriteUint32(h, uint32(k.CullMode))
	hashWriteUint32(h, uint32(k.FrontFace))
	hashWriteUint32(h, uint32(k.ClipSpace))
	hashWriteUint32(h, k.NumSamples)

	hashWriteUint32(h, k.NumColorAttachments)
	for i := range k.ColorFormats {
		hashWriteUint32(h, uint32(k.ColorFormats[i]))
		hashWriteUint32(h, uint32(k.MRTSwizzles[i]))
		b := &k.BlendControls[i]
		hashWriteUint32(h, uint32(b.ColorSrcFactor))
		hashWriteUint32(h, uint32(b.ColorCombFunc))
		hashWriteUint32(h, uint32(b.ColorDstFactor))
		hashWriteUint32(h, uint32(b.AlphaSrcFactor))
		hashWriteUint32(h, uint32(b.AlphaCombFunc))
		hashWriteUint32(h, uint32(b.AlphaDstFactor))
		hashWriteBool(h, b.SeparateAlphaBlend)
		hashWriteBool(h, b.Enable)
		hashWriteUint32(h, uint32(k.WriteMasks[i]))
	}
	hashWriteUint32(h, k.MRTMask)
	hashWriteUint32(h, uint32(k.CbShaderMask))

	for _, sh := range k.StageHashes {
		hashWriteUint64(h, sh)
	}
	return h.Sum64()
}
