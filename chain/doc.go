// SPDX-License-Identifier: MIT

// Package chain builds rigid-transform pipelines from YAML documents and
// applies them to batches of points.
//
// A document lists steps in application order:
//
//	name: arm
//	units: degrees
//	steps:
//	  - translate: [1, 2, 3]
//	  - rotate: {axis: [0, 0, 1], angle: 90}
//	  - euler: {roll: 0, pitch: 0, yaw: 90}
//	  - isometry:
//	      translation: [0, 0, 1]
//	      rotation: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]
//	    invert: true
//	points:
//	  - [1, 0, 0]
//
// For steps S1..Sn the pipeline isometry is Sn ∘ ... ∘ S1, so S1 acts on a
// point first. An empty document yields the identity.
//
// Unlike isometry.RotateAround, a rotate step whose axis length is zero, NaN
// or infinite is rejected with ErrZeroAxis. A YAML stream must hold a single
// document.
package chain
