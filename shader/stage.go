// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader defines the shader-side vocabulary shared by the pipeline
// cache and its collaborators: stages, program parameters, translation
// info, runtime info and the specialization used to deduplicate compiled
// modules.
package shader

import "fmt"

// Stage identifies a hardware shader stage.
type Stage uint8

// Hardware shader stages. Graphics stages are ordered by their register
// slot index.
const (
	StageFragment Stage = iota
	StageVertex
	StageGeometry
	StageHull
	StageLocal
	StageCompute
)

var stageNames = [...]string{
	StageFragment: "fs",
	StageVertex:   "vs",
	StageGeometry: "gs",
	StageHull:     "hs",
	StageLocal:    "ls",
	StageCompute:  "cs",
}

// String returns the short stage name used in module labels and dumps.
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// StageFromIndex maps a graphics stage slot index to its Stage.
func StageFromIndex(i int) Stage {
	return Stage(i)
}

// ModuleID is an opaque handle to a compiled shader module. The module
// compiler that produced it maps it back to a backend object.
type ModuleID uint64

// InvalidModule is the zero ModuleID.
const InvalidModule ModuleID = 0

// Params identifies a program fetched from register state.
type Params struct {
	// UserData is the user-data SGPR snapshot for the program.
	UserData []uint32

	// Code is the raw instruction stream.
	Code []uint32

	// Hash is the bytecode content hash.
	Hash uint64
}

// Profile describes backend capabilities the translator and emitter may
// rely on.
type Profile struct {
	SupportedSPIRV                 uint32
	SubgroupSize                   uint32
	SupportExplicitWorkgroupLayout bool
}

// DefaultProfile returns the profile used when none is configured.
func DefaultProfile() Profile {
	return Profile{
		SupportedSPIRV:                 0x00010500,
		SubgroupSize:                   64,
		SupportExplicitWorkgroupLayout: true,
	}
}

// IR is the translator output consumed by an emitter.
type IR struct {
	Stage Stage

	// Source is the translated program text. Emitters decide how binding
	// slots are substituted into it.
	Source string

	// EntryPoint is the entry function name in Source.
	EntryPoint string

	// Resources is the number of resource bindings the program declares.
	Resources uint32
}
