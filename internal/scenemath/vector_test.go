// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scenemath

import "testing"

func TestV3SetGet(t *testing.T) {
	var v V3
	v.SetS(1, 2, 3)
	x, y, z := v.GetS()
	if x != 1 || y != 2 || z != 3 {
		t.Errorf("GetS() = (%v,%v,%v), want (1,2,3)", x, y, z)
	}
}

func TestV3Eq(t *testing.T) {
	a := V3{1, 2, 3}
	b := V3{1, 2, 3}
	c := V3{1, 2, 4}
	if !a.Eq(b) {
		t.Error("identical vectors should be Eq")
	}
	if a.Eq(c) {
		t.Error("differing vectors should not be Eq")
	}
}
