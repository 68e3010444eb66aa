// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"fmt"

	"github.com/gogpu/regpipe/shader"
)

// Program is a shader program identified by its bytecode content hash.
// Each specialization it was compiled under is kept as a permutation, in
// compilation order.
type Program struct {
	Stage        shader.Stage
	Hash         uint64
	Permutations []*Permutation
}

// Permutation is one compiled specialization of a Program.
type Permutation struct {
	Module shader.ModuleID
	Spec   shader.Specialization
	Info   *shader.Info

	// EntryPoint is the entry function the translator named, empty when
	// the backend default applies.
	EntryPoint string

	// NumBindings is how far compilation advanced the binding cursor.
	NumBindings uint32
}

// ProgramResult is returned by a program lookup.
type ProgramResult struct {
	Info       *shader.Info
	Module     shader.ModuleID
	EntryPoint string
	// Hash combines the content hash with the permutation index.
	Hash uint64
}

// getProgram resolves the program with the given params under the
// specialization implied by the current registers and *binding. It
// compiles a new permutation only when no recorded one matches. The
// cursor is left where the matched permutation's compilation left it.
func (c *PipelineCache) getProgram(stage shader.Stage, params shader.Params, binding *uint32) (ProgramResult, error) {
	rt := c.buildRuntimeInfo(stage)

	pgm, ok := c.programs[params.Hash]
	if !ok {
		perm, err := c.compilePermutation(stage, params, &rt, 0, binding)
		if err != nil {
			return ProgramResult{}, err
		}
		pgm = &Program{
			Stage:        stage,
			Hash:         params.Hash,
			Permutations: []*Permutation{perm},
		}
		c.programs[params.Hash] = pgm
		return perm.result(params.Hash, 0), nil
	}

	info := shader.NewInfo(stage, params)
	spec := shader.NewSpecialization(&info, &rt, *binding)
	for idx, perm := range pgm.Permutations {
		if perm.Spec.Equal(&spec) {
			*binding += perm.NumBindings
			return perm.result(params.Hash, idx), nil
		}
	}

	idx := len(pgm.Permutations)
	perm, err := c.compilePermutation(stage, params, &rt, idx, binding)
	if err != nil {
		return ProgramResult{}, err
	}
	pgm.Permutations = append(pgm.Permutations, perm)
	return perm.result(params.Hash, idx), nil
}

// compilePermutation runs translate, emit and compile for one
// specialization. *binding is only advanced when all three succeed.
func (c *PipelineCache) compilePermutation(stage shader.Stage, params shader.Params, rt *shader.RuntimeInfo,
	permIdx int, binding *uint32) (*Permutation, error) {
	info := shader.NewInfo(stage, params)
	start := *binding
	spec := shader.NewSpecialization(&info, rt, start)

	cursor := start
	module, entry, err := c.compileModule(&info, rt, params.Code, permIdx, &cursor)
	if err != nil {
		return nil, err
	}
	*binding = cursor

	return &Permutation{
		Module:      module,
		Spec:        spec,
		Info:        &info,
		EntryPoint:  entry,
		NumBindings: cursor - start,
	}, nil
}

// result returns the lookup result for permutation idx of the program
// with content hash hash.
func (p *Permutation) result(hash uint64, idx int) ProgramResult {
	return ProgramResult{
		Info:       p.Info,
		Module:     p.Module,
		EntryPoint: p.EntryPoint,
		Hash:       HashCombine(hash, uint64(idx)), //nolint:gosec // G115: permutation index is non-negative
	}
}

// compileModule translates code, emits backend code and compiles it into
// a module named after the stage, content hash and permutation. It also
// returns the entry point named by the translator.
func (c *PipelineCache) compileModule(info *shader.Info, rt *shader.RuntimeInfo, code []uint32,
	permIdx int, binding *uint32) (shader.ModuleID, string, error) {
	permutation := ""
	if permIdx != 0 {
		permutation = "(permutation)"
	}
	Logger().Info("regpipe: compiling shader",
		"stage", info.Stage, "hash", fmt.Sprintf("%#x", info.PgmHash), "variant", permutation)

	c.dumpShader(code, info.PgmHash, info.Stage, permIdx, "bin")

	ir, err := c.translator.Translate(code, info, rt, c.opts.profile)
	if err != nil {
		return shader.InvalidModule, "", fmt.Errorf("regpipe: translate %s shader %#x: %w", info.Stage, info.PgmHash, err)
	}
	if ir == nil {
		return shader.InvalidModule, "", fmt.Errorf("regpipe: translate %s shader %#x: no IR produced", info.Stage, info.PgmHash)
	}
	spv, err := c.emitter.Emit(c.opts.profile, rt, ir, binding)
	if err != nil {
		return shader.InvalidModule, "", fmt.Errorf("regpipe: emit %s shader %#x: %w", info.Stage, info.PgmHash, err)
	}
	c.dumpShader(spv, info.PgmHash, info.Stage, permIdx, "spv")

	label := fmt.Sprintf("%s_%#x_%d", info.Stage, info.PgmHash, permIdx)
	module, err := c.compiler.CompileModule(spv, label)
	if err != nil {
		return shader.InvalidModule, "", fmt.Errorf("regpipe: compile module %s: %w", label, err)
	}
	c.stats.Compilations++
	return module, ir.EntryPoint, nil
}
