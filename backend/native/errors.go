// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "errors"

// Package errors for native collaborators.
var (
	// ErrNilDevice is returned when a collaborator is created without a device.
	ErrNilDevice = errors.New("native: device is nil")

	// ErrNoHALDevice is returned when a device provider does not expose a HAL device.
	ErrNoHALDevice = errors.New("native: provider does not expose a HAL device")

	// ErrEmptySource is returned when IR carries no program text.
	ErrEmptySource = errors.New("native: IR source is empty")

	// ErrUnknownModule is returned when a module ID was not issued by the compiler.
	ErrUnknownModule = errors.New("native: unknown shader module")

	// ErrMissingStage is returned when a pipeline lacks a required stage.
	ErrMissingStage = errors.New("native: required shader stage is missing")
)
