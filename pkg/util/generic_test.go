// pkg/util/generic_test.go
// Copyright(c) 2025 C2 contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 {
		t.Errorf("Select true failed")
	}
	if Select(false, "a", "b") != "b" {
		t.Errorf("Select false failed")
	}
}

func TestMapSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(v int) int { return 2 * v })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("MapSlice gave %v", doubled)
	}
	if MapSlice(nil, func(v int) int { return v }) != nil {
		t.Errorf("MapSlice of nil should be nil")
	}
}

func TestFilterSlice(t *testing.T) {
	even := FilterSlice([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	if !slices.Equal(even, []int{2, 4, 6}) {
		t.Errorf("FilterSlice gave %v", even)
	}
}
