// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// Specialization is everything besides bytecode that influences code
// generation for a program. Two permutations of the same program can share
// a compiled module exactly when their specializations are Equal.
type Specialization struct {
	Stage        Stage
	PgmHash      uint64
	Runtime      RuntimeInfo
	StartBinding uint32
}

// NewSpecialization snapshots the runtime info and binding cursor for a
// program. The runtime info is copied so later register changes cannot
// alter a recorded specialization.
func NewSpecialization(info *Info, rt *RuntimeInfo, startBinding uint32) Specialization {
	return Specialization{
		Stage:        info.Stage,
		PgmHash:      info.PgmHash,
		Runtime:      rt.Clone(),
		StartBinding: startBinding,
	}
}

// Equal reports structural equality.
func (s *Specialization) Equal(o *Specialization) bool {
	return s.Stage == o.Stage &&
		s.PgmHash == o.PgmHash &&
		s.StartBinding == o.StartBinding &&
		s.Runtime.Equal(&o.Runtime)
}
