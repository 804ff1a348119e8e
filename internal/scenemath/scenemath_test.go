// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scenemath

import "testing"

func TestAeqmately(t *testing.T) {
	var f1 = 0.0
	var f2 = 0.0000001
	var f3 = -0.0001
	if !Aeq(f1, f2) || Aeq(f1, f3) {
		t.Error("Aeq")
	}
}

func TestApproximatelyZero(t *testing.T) {
	var f1 = 0.0000001
	var f2 = -0.0000001
	var f3 = -0.0001
	if !AeqZ(f1) || !AeqZ(f2) || AeqZ(f3) {
		t.Error("AeqZ")
	}
}

func TestRad(t *testing.T) {
	if !Aeq(Rad(180), Pi) {
		t.Error("Rad")
	}
	if !Aeq(Rad(360), Pix2) {
		t.Error("Rad")
	}
}
