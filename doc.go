// Package regpipe resolves shadow register state into pipeline objects.
//
// # Overview
//
// A command-stream emulator replays draws and dispatches against a shadow
// copy of the graphics registers. Before each draw it needs a pipeline that
// matches the depth/stencil, rasterizer, color target and shader program
// state currently programmed. regpipe builds a canonical key from those
// registers, compiles each shader program once per specialization and
// hands back the pipeline cached for the key, creating it on first use.
//
// # Quick Start
//
//	cache, err := regpipe.New(liverpool, translator, emitter, compiler,
//	    regpipe.WithPipelineBuilder(builder),
//	)
//	if err != nil {
//	    return err
//	}
//
//	pipeline, err := cache.GetGraphicsPipeline()
//	switch {
//	case err != nil:
//	    return err
//	case pipeline == nil:
//	    // Helper pass or unsupported state: skip the draw.
//	}
//
// # Programs and Permutations
//
// A program is identified by the content hash in its binary-info header.
// The same program may be compiled several times when the registers around
// it imply a different specialization (vertex export layout, fragment
// interpolants, color swizzles, workgroup size, starting resource binding).
// Each compilation is a permutation; the key stores the content hash mixed
// with the permutation index, so pipelines that share a program under the
// same specialization share a key.
//
// # Collaborators
//
// Translation, code emission, module compilation and pipeline creation are
// injected. Package backend/native provides implementations on top of naga
// and the wgpu HAL.
//
// # Logging
//
// regpipe is silent by default. See [SetLogger].
//
// # Thread Safety
//
// A PipelineCache belongs to the goroutine processing the command stream.
package regpipe
