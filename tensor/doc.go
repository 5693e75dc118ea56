// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the variance-tagged tensor algebra the simulator is
// built on.
//
// # Overview
//
// A Tensor is a flat row-major buffer of float64 leaves with a Shape and one
// Variance per axis. An Up axis is a Ket (column), a Down axis a Bra (row).
// Nesting is expressed by rank: a Bra of two Kets of length 2 has shape {2, 2}
// and variances {Down, Up}.
//
// # Basic Usage
//
//	import "github.com/born-ml/qubit/tensor"
//
//	func main() {
//	    x := tensor.Vector(tensor.Up, 1, 0)
//	    y := tensor.Vector(tensor.Up, 0, 1)
//
//	    // A basis is a Bra of column Kets.
//	    basis, _ := tensor.Stack(tensor.Down, x, y)
//
//	    // Its transpose projects a state onto every basis vector.
//	    amps, _ := tensor.Mul(basis.T(), tensor.Vector(tensor.Up, 0.6, 0.8))
//	    fmt.Println(amps) // Ket(0.6, 0.8)
//	}
//
// # Products
//
// Mul contracts a Bra against a Ket of equal length, distributes an outer Ket
// over its right operand and scales by scalars. Outer keeps both operands'
// axes (rank adds up) and Kron aligns them innermost-first, multiplying sizes
// so that index pair (i, j) lands at i*M+j.
//
// # Transpose
//
// T flips every variance without moving data, so transposing twice returns an
// equal tensor and a Bra of Kets shares its buffer with its Ket of Bras dual.
package tensor
