// Package dataset reads and writes molecule files.
//
// A dataset is a YAML (or JSON) document:
//
//	molecules:
//	  - name: water
//	    charges: [8, 1, 1]
//	    coulomb:
//	      - [73.517, 8.353, 8.353]
//	      - [8.353, 0.5, 0.660]
//	      - [8.353, 0.660, 0.5]
//	    coordinates:           # optional reference geometry
//	      - [0, 0, 0.1173]
//	      - [0, 0.7572, -0.4692]
//	      - [0, -0.7572, -0.4692]
//	  - name: helium
//	    charges: 2             # a single number is a one-atom molecule
//	    coulomb: [[2.639]]
//
// Reconstructed coordinates are written as XYZ frames by WriteXYZ.
package dataset
