// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "slices"

// Info collects facts about a program that the translator discovers and
// later pipeline construction needs.
type Info struct {
	Stage    Stage
	PgmHash  uint64
	UserData []uint32

	// MRTMask has bit i set when a fragment program writes color
	// attachment i (hardware slot index).
	MRTMask uint32

	NumBuffers  uint32
	NumImages   uint32
	NumSamplers uint32
}

// NewInfo returns the initial info for a program before translation.
func NewInfo(stage Stage, params Params) Info {
	return Info{
		Stage:    stage,
		PgmHash:  params.Hash,
		UserData: slices.Clone(params.UserData),
	}
}

// NumBindings returns the number of resource binding slots the program
// consumes.
func (i *Info) NumBindings() uint32 {
	return i.NumBuffers + i.NumImages + i.NumSamplers
}
