// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regpipe

import (
	"fmt"
	"strconv"
	"strings"
)

// DenyList is a set of program content hashes that must never be
// compiled. The zero value is an empty list.
type DenyList map[uint64]struct{}

// NewDenyList returns a deny-list holding the given hashes.
func NewDenyList(hashes ...uint64) DenyList {
	d := make(DenyList, len(hashes))
	for _, h := range hashes {
		d[h] = struct{}{}
	}
	return d
}

// ParseDenyList parses content hashes written in hex (0x prefix) or
// decimal. Blank entries are ignored.
func ParseDenyList(entries []string) (DenyList, error) {
	d := make(DenyList, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		h, err := strconv.ParseUint(e, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("regpipe: invalid deny-list entry %q: %w", e, err)
		}
		d[h] = struct{}{}
	}
	return d, nil
}

// Contains reports whether hash is deny-listed.
func (d DenyList) Contains(hash uint64) bool {
	_, ok := d[hash]
	return ok
}

// Len returns the number of deny-listed hashes.
func (d DenyList) Len() int {
	return len(d)
}
