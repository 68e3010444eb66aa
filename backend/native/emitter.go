// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"encoding/binary"
	"fmt"
	"strings"
	"text/template"

	"github.com/gogpu/naga"

	"github.com/gogpu/regpipe/shader"
)

// NagaEmitter emits SPIR-V from WGSL IR.
//
// IR source is a text/template. Binding slots are written as
// {{.Binding N}}, which expands to the permutation's first binding plus N.
// The runtime info and profile are available as .Runtime and .Profile, so
// programs can branch on specialization inputs:
//
//	@group(0) @binding({{.Binding 0}}) var<uniform> u: Uniforms;
//	{{if .Runtime.VS.EmulateDepthNegativeOneToOne}}out.pos.z = (out.pos.z + out.pos.w) * 0.5;{{end}}
//
// After a successful emit the binding cursor is advanced by IR.Resources.
type NagaEmitter struct {
	compile func(string) ([]byte, error)
}

// NewNagaEmitter creates an emitter backed by naga.Compile.
func NewNagaEmitter() *NagaEmitter {
	return &NagaEmitter{compile: naga.Compile}
}

// emitData is the template data of one emit.
type emitData struct {
	base    uint32
	Runtime *shader.RuntimeInfo
	Profile shader.Profile
}

// Binding returns the binding slot for the i-th resource of the program.
func (d emitData) Binding(i int) uint32 {
	return d.base + uint32(i) //nolint:gosec // G115: resource indices are small
}

// Render expands the IR template without compiling it.
func (e *NagaEmitter) Render(profile shader.Profile, rt *shader.RuntimeInfo, ir *shader.IR, binding uint32) (string, error) {
	if ir == nil || strings.TrimSpace(ir.Source) == "" {
		return "", ErrEmptySource
	}
	tmpl, err := template.New(ir.Stage.String()).Option("missingkey=error").Parse(ir.Source)
	if err != nil {
		return "", fmt.Errorf("native: parse %s program: %w", ir.Stage, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, emitData{base: binding, Runtime: rt, Profile: profile}); err != nil {
		return "", fmt.Errorf("native: render %s program: %w", ir.Stage, err)
	}
	return sb.String(), nil
}

// Emit renders and compiles ir to SPIR-V words.
func (e *NagaEmitter) Emit(profile shader.Profile, rt *shader.RuntimeInfo, ir *shader.IR, binding *uint32) ([]uint32, error) {
	src, err := e.Render(profile, rt, ir, *binding)
	if err != nil {
		return nil, err
	}

	spirvBytes, err := e.compile(src)
	if err != nil {
		return nil, fmt.Errorf("native: compile %s program: %w", ir.Stage, err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	*binding += ir.Resources
	slogger().Debug("native: emitted SPIR-V", "stage", ir.Stage, "words", len(words), "bindings", ir.Resources)
	return words, nil
}
