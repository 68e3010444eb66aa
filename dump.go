// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/regpipe/shader"
)

// dumpFileName returns the dump file name for a program permutation.
func dumpFileName(stage shader.Stage, hash uint64, permIdx int, ext string) string {
	return fmt.Sprintf("%s_0x%016x_%d.%s", stage, hash, permIdx, ext)
}

// dumpShader writes code to the dump directory when dumping is enabled.
// Failures are logged and otherwise ignored.
func (c *PipelineCache) dumpShader(code []uint32, hash uint64, stage shader.Stage, permIdx int, ext string) {
	dir := c.opts.dumpDir
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("regpipe: create shader dump directory", "dir", dir, "err", err)
		return
	}

	buf := make([]byte, len(code)*4)
	for i, w := range code {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	path := filepath.Join(dir, dumpFileName(stage, hash, permIdx, ext))
	if err := os.WriteFile(path, buf, 0o644); err != nil { //nolint:gosec // G306: dumps are meant to be read by other tools
		Logger().Warn("regpipe: write shader dump", "path", path, "err", err)
	}
}
