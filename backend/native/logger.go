// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"log/slog"

	"github.com/gogpu/regpipe"
)

// slogger returns the logger configured with regpipe.SetLogger.
// All logging in backend/native goes through this function.
func slogger() *slog.Logger { return regpipe.Logger() }
