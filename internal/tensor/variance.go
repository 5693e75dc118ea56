// Package tensor provides the rank-generic tensor algebra behind kets, bras and operators.
//
// A tensor is a flat row-major buffer of float64 leaves, a Shape and one Variance per axis.
// Up axes are Ket (column) indices, Down axes are Bra (row) indices. Transposition flips
// every variance and never moves data.
package tensor

import (
	"strconv"
	"strings"
)

// Variance tags a tensor axis as a column (Ket) or row (Bra) index.
type Variance uint8

// Axis variances.
const (
	Up   Variance = iota // Ket, column, contravariant.
	Down                 // Bra, row, covariant.
)

// Dual returns the opposite variance.
func (v Variance) Dual() Variance {
	if v == Up {
		return Down
	}
	return Up
}

// String returns "Ket" for Up and "Bra" for Down.
func (v Variance) String() string {
	switch v {
	case Up:
		return "Ket"
	case Down:
		return "Bra"
	default:
		return "Unknown"
	}
}

// Variances lists the variance of every axis, outermost first.
type Variances []Variance

// Equal reports whether both lists tag the same axes identically.
func (vs Variances) Equal(other Variances) bool {
	if len(vs) != len(other) {
		return false
	}
	for i := range vs {
		if vs[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the list.
func (vs Variances) Clone() Variances {
	clone := make(Variances, len(vs))
	copy(clone, vs)
	return clone
}

// Dual returns a new list with every variance flipped.
func (vs Variances) Dual() Variances {
	dual := make(Variances, len(vs))
	for i, v := range vs {
		dual[i] = v.Dual()
	}
	return dual
}

func signature(shape Shape, vs Variances) string {
	if len(shape) == 0 {
		return "Scalar"
	}
	var b strings.Builder
	for i, dim := range shape {
		b.WriteString(vs[i].String())
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(dim))
		b.WriteByte(']')
	}
	return b.String()
}
